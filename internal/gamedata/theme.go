package gamedata

import "github.com/gdamore/tcell/v2"

// Theme holds the terminal UI colours as hex strings loaded from theme.json.
type Theme struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Muted  string `json:"muted"`
	Dice   string `json:"dice"`
	Filled string `json:"filled"`
	Hint   string `json:"hint"`
	Error  string `json:"error"`
	Bonus  string `json:"bonus"`
}

// LoadTheme loads the colour theme from the embedded theme.json file.
func LoadTheme() (Theme, error) {
	return Load[Theme]("theme.json")
}

// MustLoadTheme loads the colour theme, panicking on error.
func MustLoadTheme() Theme {
	return MustLoad[Theme]("theme.json")
}

// Color converts one of the theme's hex strings, falling back to white.
func (t Theme) Color(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}
