// Package game provides the round controller that drives one game of Pytzee.
package game

// Phase is the controller's position within a round.
type Phase int

const (
	// PhaseAwaitingRoll - the next roll has not been thrown yet
	PhaseAwaitingRoll Phase = iota
	// PhaseAwaitingChoice - waiting for the player to pick a category or skip
	PhaseAwaitingChoice
	// PhaseResolved - a valid category is chosen and ready to be scored
	PhaseResolved
	// PhaseGameOver - all rounds consumed and the card is finalized
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingRoll:
		return "awaiting_roll"
	case PhaseAwaitingChoice:
		return "awaiting_choice"
	case PhaseResolved:
		return "resolved"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
