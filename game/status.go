package game

// Status is the overall state of a board.
type Status int

// The ordinals match the codes hosts receive across the handle boundary.
const (
	StatusError       Status = iota - 1 // Invalid handle; never held by a live board.
	StatusStarted                       // Constructed, mines not placed yet.
	StatusOngoing                       // Mines placed, play continues.
	StatusSteppedMine                   // A mine was revealed.
	StatusVictory                       // Every safe cell is revealed.
)

// IsTerminal reports whether no further transition can happen.
func (s Status) IsTerminal() bool {
	return s == StatusSteppedMine || s == StatusVictory
}

func (s Status) String() string {
	switch s {
	case StatusStarted:
		return "STARTED"
	case StatusOngoing:
		return "ONGOING"
	case StatusSteppedMine:
		return "STEPPED_MINE"
	case StatusVictory:
		return "VICTORY"
	default:
		return "ERROR"
	}
}
