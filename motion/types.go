package motion

import (
	"errors"
	"fmt"
)

// ErrNegativeOrder indicates a derivative order below zero.
var ErrNegativeOrder = errors.New("motion: derivative order must be >= 0")

// Translational derivative orders.
const (
	Position     = 0
	Velocity     = 1
	Acceleration = 2
	Jerk         = 3
	Snap         = 4
)

// Rotational aliases; they share the numeric mapping of the translational orders.
const (
	Orientation         = Position
	AngularVelocity     = Velocity
	AngularAcceleration = Acceleration
)

var names = [...]string{
	Position:     "position",
	Velocity:     "velocity",
	Acceleration: "acceleration",
	Jerk:         "jerk",
	Snap:         "snap",
}

// Name returns a human-readable label for order.
// Orders above Snap render as "derivative <k>", negatives as "invalid".
func Name(order int) string {
	switch {
	case order < 0:
		return "invalid"
	case order < len(names):
		return names[order]
	default:
		return fmt.Sprintf("derivative %d", order)
	}
}

// Validate returns ErrNegativeOrder (with the offending value) when order < 0.
func Validate(order int) error {
	if order < 0 {
		return fmt.Errorf("order %d: %w", order, ErrNegativeOrder)
	}

	return nil
}
