package scoring

import "github.com/samdwyer/pytzee/internal/dice"

// Potential is the score a category would earn for the current roll.
type Potential struct {
	Category Category
	Score    int
}

// Preview evaluates roll against every available category without committing
// anything. Invalid categories and invalid rolls are skipped.
func Preview(roll dice.Roll, available []Category, priorFiveOfAKind int) []Potential {
	out := make([]Potential, 0, len(available))
	for _, c := range available {
		score, err := Evaluate(c, roll, priorFiveOfAKind)
		if err != nil {
			continue
		}
		out = append(out, Potential{Category: c, Score: score})
	}
	return out
}

// Best returns the highest-scoring potential, preferring the earliest on ties.
// ok is false when potentials is empty.
func Best(potentials []Potential) (best Potential, ok bool) {
	for i, p := range potentials {
		if i == 0 || p.Score > best.Score {
			best = p
		}
	}
	return best, len(potentials) > 0
}
