// Copyright © 2024 Galvanized Logic Inc.

package geom

// QuadRootAscending returns the root (-b + sqrt(d)) / (2a) of
// a*t^2 + b*t + c = 0, computed as 2c / (-b - sqrt(d)) when b >= 0 to avoid
// the catastrophic cancellation that occurs in the textbook form when b and
// the discriminant's square root nearly cancel (§4.3). This is the smaller
// root when a < 0 and the larger one when a > 0; for a == 0 it returns the
// single root of the linear equation. ok is false when there is
// no real root, i.e. a == b == 0 or the discriminant is negative.
func QuadRootAscending(a, b, c Scalar) (root Scalar, ok bool) {
	if a == 0 {
		if b == 0 {
			return 0, false
		}
		return -c / b, true
	}
	d := b*b - 4*a*c
	if d < 0 {
		return 0, false
	}
	sq := d.Sqrt()
	if b >= 0 {
		denom := -b - sq
		if denom == 0 {
			return -b / (2 * a), true
		}
		return 2 * c / denom, true
	}
	return (-b + sq) / (2 * a), true
}

// quadRoots returns both real roots of a*t^2 + b*t + c = 0, lo <= hi. The
// first root is computed with QuadRootAscending for numerical stability and
// the second recovered from Vieta's formulas (product = c/a), avoiding a
// second catastrophic-cancellation-prone evaluation.
func quadRoots(a, b, c Scalar) (lo, hi Scalar, ok bool) {
	r1, ok := QuadRootAscending(a, b, c)
	if !ok {
		return 0, 0, false
	}
	if a == 0 {
		return r1, r1, true
	}
	var r2 Scalar
	if r1 == 0 {
		r2 = -b / a
	} else {
		r2 = (c / a) / r1
	}
	if r1 <= r2 {
		return r1, r2, true
	}
	return r2, r1, true
}
