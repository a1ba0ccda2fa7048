// Copyright © 2024 Galvanized Logic Inc.

// Package geom provides the 2D geometric primitives used by the collider
// engine: an ordered Scalar field, Vec2 vector algebra, and the Rect/Circle
// Shape sum type with its continuous-motion placement math.
package geom

import (
	"fmt"
	"math"
)

// Scalar is a totally ordered field value used for every engine-visible
// time, length, and coordinate. It wraps float64 but rejects NaN at
// construction so that comparisons are always well defined; there is no
// Scalar that compares unequal to itself.
type Scalar float64

// Inf is the representable positive infinity used to mean "no event in
// this window".
var Inf = Scalar(math.Inf(1))

// Zero is the additive identity, spelled out for readability at call sites
// that compare against it.
const Zero Scalar = 0

// Epsilon is the tolerance used by AlmostZero. The rect-rect solver uses
// it to treat a near-zero overlap rate as zero, and the engine's refresh
// heuristic uses it to treat a near-zero rate as motionless.
const Epsilon Scalar = 1e-9

// NewScalar wraps a float64, panicking if it is NaN. Use this at the
// boundary where client-supplied floats enter the engine; internal
// arithmetic never needs to call it because the solver special-cases the
// 0/0 degeneracies that would otherwise produce NaN.
func NewScalar(v float64) Scalar {
	if math.IsNaN(v) {
		panic("geom: NaN is not a valid Scalar")
	}
	return Scalar(v)
}

// Float64 returns the underlying float64 value.
func (s Scalar) Float64() float64 { return float64(s) }

// IsInf reports whether s is the representable positive infinity.
func (s Scalar) IsInf() bool { return math.IsInf(float64(s), 1) }

// Sqrt returns the exact (to float64 precision) square root of s. s must
// be non-negative.
func (s Scalar) Sqrt() Scalar {
	if s < 0 {
		panic("geom: Sqrt of negative Scalar")
	}
	return Scalar(math.Sqrt(float64(s)))
}

// ApproxSqrt computes the square root of s to within epsilon using
// Babylonian iteration, per §4.7. Scalar's own Sqrt is exact (it wraps
// float64's library sqrt), so this exists for Scalar-like implementations
// that lack one and is exercised directly by its own tests.
func ApproxSqrt(value, epsilon Scalar) (Scalar, error) {
	if value < 0 {
		return 0, fmt.Errorf("geom: ApproxSqrt of negative value %v", value)
	}
	if epsilon <= 0 {
		return 0, fmt.Errorf("geom: ApproxSqrt requires a positive epsilon, got %v", epsilon)
	}
	if value == 0 {
		return 0, nil
	}
	x := value
	if x < 1 {
		x = 1
	}
	for {
		next := (x + value/x) / 2
		if absScalar((next*next-value)/(2*next)) < epsilon {
			return next, nil
		}
		x = next
	}
}

func absScalar(s Scalar) Scalar {
	if s < 0 {
		return -s
	}
	return s
}

// AlmostZero reports whether s is within Epsilon of zero.
func (s Scalar) AlmostZero() bool { return absScalar(s) < Epsilon }

// Min returns the lesser of a and b.
func Min(a, b Scalar) Scalar {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func Max(a, b Scalar) Scalar {
	if a > b {
		return a
	}
	return b
}
