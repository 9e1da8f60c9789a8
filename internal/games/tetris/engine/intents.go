package engine

// Rotation is a requested rotation direction.
type Rotation uint8

const (
	RotateNone Rotation = iota
	RotateClockwise
	RotateCounterClockwise
)

// String returns a human-readable name for the rotation.
func (r Rotation) String() string {
	switch r {
	case RotateNone:
		return "none"
	case RotateClockwise:
		return "clockwise"
	case RotateCounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}

// Intents collects the player's requests between two ticks. Each kind is a
// flag, so repeating an intent within a tick has no extra effect.
type Intents struct {
	Left             bool
	Right            bool
	Down             bool
	Drop             bool
	Hold             bool
	Clockwise        bool
	CounterClockwise bool
}

// Rotation resolves the requested rotation. Clockwise wins when both
// directions were requested in the same tick.
func (in Intents) Rotation() Rotation {
	switch {
	case in.Clockwise:
		return RotateClockwise
	case in.CounterClockwise:
		return RotateCounterClockwise
	default:
		return RotateNone
	}
}

// DeltaX returns the combined horizontal request; left and right cancel out.
func (in Intents) DeltaX() int {
	dx := 0
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	return dx
}

// Empty reports whether no intent is pending.
func (in Intents) Empty() bool {
	return in == Intents{}
}
