package gamedata

import (
	"errors"
	"fmt"
	"strings"
)

// Section groups categories on the scorecard.
type Section string

const (
	// SectionUpper - the six count categories that feed the upper bonus
	SectionUpper Section = "upper"
	// SectionLower - the combination categories
	SectionLower Section = "lower"
)

// CategoryDef describes a scoring category loaded from JSON.
type CategoryDef struct {
	ID          string   `json:"id"`          // Stable identifier (e.g., "count_1")
	Token       string   `json:"token"`       // Canonical input token (e.g., "count 1")
	Label       string   `json:"label"`       // Display name (e.g., "Ones")
	Section     Section  `json:"section"`     // "upper" or "lower"
	Aliases     []string `json:"aliases"`     // Extra accepted input tokens
	Description string   `json:"description"` // One-line rule summary
}

// CategoriesFile represents the structure of categories.json.
type CategoriesFile struct {
	Categories []CategoryDef `json:"categories"`
}

// LoadCategories loads category definitions from the embedded categories.json file.
func LoadCategories() ([]CategoryDef, error) {
	file, err := Load[CategoriesFile]("categories.json")
	if err != nil {
		return nil, err
	}
	return file.Categories, nil
}

// NormalizeToken lowercases a player-typed token, turns '-' and '_' into
// spaces and collapses runs of whitespace.
func NormalizeToken(token string) string {
	token = strings.ToLower(token)
	token = strings.NewReplacer("-", " ", "_", " ").Replace(token)
	return strings.Join(strings.Fields(token), " ")
}

// CategoryRegistry resolves player input to category definitions.
type CategoryRegistry struct {
	byToken map[string]*CategoryDef
	byID    map[string]*CategoryDef
	all     []CategoryDef
}

// NewCategoryRegistry creates a registry from loaded category definitions.
// Every definition is reachable by its id, its token and each alias.
func NewCategoryRegistry(categories []CategoryDef) *CategoryRegistry {
	registry := &CategoryRegistry{
		byToken: make(map[string]*CategoryDef),
		byID:    make(map[string]*CategoryDef),
		all:     categories,
	}
	for i := range categories {
		def := &categories[i]
		registry.byID[def.ID] = def
		for _, key := range def.keys() {
			registry.byToken[key] = def
		}
	}
	return registry
}

// LoadCategoryRegistry loads and validates a registry from the embedded categories.json.
func LoadCategoryRegistry() (*CategoryRegistry, error) {
	categories, err := LoadCategories()
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, errors.New("no categories loaded from categories.json")
	}
	if err := validateCategories(categories); err != nil {
		return nil, err
	}
	return NewCategoryRegistry(categories), nil
}

// MustLoadCategoryRegistry loads a registry, panicking on error.
func MustLoadCategoryRegistry() *CategoryRegistry {
	registry, err := LoadCategoryRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Resolve returns the definition matching token after normalization, or nil.
func (r *CategoryRegistry) Resolve(token string) *CategoryDef {
	return r.byToken[NormalizeToken(token)]
}

// GetByID returns the definition with the given id, or nil if not found.
func (r *CategoryRegistry) GetByID(id string) *CategoryDef {
	return r.byID[id]
}

// All returns all category definitions in scorecard order.
func (r *CategoryRegistry) All() []CategoryDef {
	return r.all
}

// Count returns the number of categories in the registry.
func (r *CategoryRegistry) Count() int {
	return len(r.all)
}

// keys lists every normalized token that selects this category.
func (c *CategoryDef) keys() []string {
	keys := []string{NormalizeToken(c.ID), NormalizeToken(c.Token)}
	for _, alias := range c.Aliases {
		keys = append(keys, NormalizeToken(alias))
	}
	return keys
}

// validateCategories rejects empty ids, unknown sections and tokens that
// would select two different categories.
func validateCategories(categories []CategoryDef) error {
	var errs []string
	owner := make(map[string]string)
	for _, c := range categories {
		if c.ID == "" || c.Token == "" {
			errs = append(errs, fmt.Sprintf("category %q: id and token must not be empty", c.Label))
			continue
		}
		if c.Section != SectionUpper && c.Section != SectionLower {
			errs = append(errs, fmt.Sprintf("category %s: unknown section %q", c.ID, c.Section))
		}
		for _, key := range c.keys() {
			if key == "skip" {
				errs = append(errs, fmt.Sprintf("category %s: %q is reserved", c.ID, key))
				continue
			}
			if prev, ok := owner[key]; ok && prev != c.ID {
				errs = append(errs, fmt.Sprintf("token %q claimed by both %s and %s", key, prev, c.ID))
				continue
			}
			owner[key] = c.ID
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid categories.json: %s", strings.Join(errs, "; "))
	}
	return nil
}
