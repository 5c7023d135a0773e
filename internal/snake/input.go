package snake

import "github.com/arcadeworks/tui-snake/internal/core"

// SpeedMode selects the tick interval: boost halves the normal delay.
type SpeedMode int

const (
	SpeedNormal SpeedMode = iota
	SpeedBoost
)

func (m SpeedMode) String() string {
	if m == SpeedBoost {
		return "boost"
	}
	return "normal"
}

// directionFor maps a movement action to a direction.
// Returns false for non-movement actions.
func directionFor(act core.Action) (Direction, bool) {
	switch act {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// MapInput translates the action observed during one tick into a requested
// direction and the speed mode for the next tick.
//
// An unrecognized or absent action requests "no change" and resets to normal
// speed. Pressing the key for the direction the snake is already moving in
// requests boost. Reversal is not filtered here; the state machine rejects
// it during Tick.
func MapInput(act core.Action, current Direction) (Direction, SpeedMode) {
	dir, ok := directionFor(act)
	if !ok {
		return current, SpeedNormal
	}
	if dir == current {
		return dir, SpeedBoost
	}
	return dir, SpeedNormal
}
