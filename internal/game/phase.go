// Package game owns the long-lived game state and the phase state
// machine, and exposes the planning, care, meta, and reporting operations
// that surround the day simulation engine.
package game

import "errors"

// Phase is a state of the game's screen-level state machine. Every
// operation guards the phase it belongs to and refuses to run elsewhere.
type Phase uint8

const (
	PhaseMeta    Phase = iota // Title / save selection
	PhaseDayLoop              // Day in progress: the simulation may run
	PhaseEvening              // Planning and bird care
	PhaseReporting            // Weekly report (Sundays)
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseMeta:
		return "Meta"
	case PhaseDayLoop:
		return "DayLoop"
	case PhaseEvening:
		return "Evening"
	case PhaseReporting:
		return "Reporting"
	}
	return "Unknown"
}

var (
	// ErrInvalidPhase is returned when an operation is invoked outside
	// its phase. The operation leaves all state unmutated.
	ErrInvalidPhase = errors.New("invalid phase")

	// ErrInsufficientFunds is returned when the balance cannot cover a
	// purchase or care action.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrBirdNotFound is returned when a bird ID is not in the flock.
	ErrBirdNotFound = errors.New("bird not found")

	// ErrUnknownAction is returned for an unrecognized care action ID.
	ErrUnknownAction = errors.New("unknown care action")

	// ErrNoSave is returned when loading a nil or empty save.
	ErrNoSave = errors.New("no save data")
)
