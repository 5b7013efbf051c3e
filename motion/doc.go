// Package motion defines the derivative-order vocabulary shared by polynomials,
// segments and samplers.
//
// A derivative order is a plain non-negative int:
//
//	0 — position (or orientation)
//	1 — velocity (or angular velocity)
//	2 — acceleration
//	3 — jerk
//	4 — snap
//
// Orders above Snap are valid; they simply have no dedicated name.
// Negative orders are rejected by Validate with ErrNegativeOrder.
package motion
