package energy

import "strconv"

// Credit is a progress-measure value: either a finite non-negative energy
// level, or Top (⊤), meaning "no finite credit suffices".
//
// This replaces the masked-integer representation of the Python source
// with a small tagged value. Top is the greatest
// element of the total order (FiniteCredit(a).Less(FiniteCredit(b)) behaves
// like int comparison; anything.Less(Top()) is true unless the receiver is
// also Top, and Top().Less(anything) is always false).
type Credit struct {
	value int64
	top   bool
}

// TopCredit is the canonical ⊤ value.
var TopCredit = Credit{top: true}

// FiniteCredit constructs a finite credit value. Negative inputs are
// clamped to 0, matching the lift operator's clamp(x) = max(x,0) for
// finite results.
func FiniteCredit(v int64) Credit {
	if v < 0 {
		v = 0
	}

	return Credit{value: v}
}

// IsTop reports whether c is ⊤.
func (c Credit) IsTop() bool { return c.top }

// Value returns (v, true) if c is finite, or (0, false) if c is ⊤.
func (c Credit) Value() (int64, bool) {
	if c.top {
		return 0, false
	}

	return c.value, true
}

// Less reports whether c is strictly less than other in the product order
// used by the solver's termination argument: Top is strictly greatest,
// finite values compare numerically.
func (c Credit) Less(other Credit) bool {
	if c.top {
		return false // Top is never less than anything
	}
	if other.top {
		return true // any finite value is less than Top
	}

	return c.value < other.value
}

// Sub computes the lift subtraction c - effect, absorbing at Top: Top
// minus any finite effect is still Top.
func (c Credit) Sub(effect int64) Credit {
	if c.top {
		return TopCredit
	}

	return rawCredit(c.value - effect)
}

// rawCredit wraps a possibly-negative raw difference without clamping,
// for use by Clamp, which applies the exact clamp(x) semantics below.
func rawCredit(v int64) Credit { return Credit{value: v} }

// Clamp applies clamp(x) = ⊤ if x≥cutoff or x is already ⊤, else max(x,0).
func (c Credit) Clamp(cutoff int64) Credit {
	if c.top {
		return TopCredit
	}
	if c.value >= cutoff {
		return TopCredit
	}
	if c.value < 0 {
		return Credit{value: 0}
	}

	return c
}

// AsWin converts a finished progress-measure value into the "win"
// representation: -1 for ⊤, else the finite value.
func (c Credit) AsWin() int64 {
	if c.top {
		return -1
	}

	return c.value
}

// String renders the credit for debugging/logging.
func (c Credit) String() string {
	if c.top {
		return "⊤"
	}

	return strconv.FormatInt(c.value, 10)
}
