package easing

import (
	"github.com/fogleman/ease"
)

// Type identifies the easing curve applied when interpolating towards a keyframe.
type Type string

const (
	Linear      Type = "linear"
	EaseIn      Type = "easeIn"
	EaseOut     Type = "easeOut"
	EaseInOut   Type = "easeInOut"
	Bezier      Type = "bezier"
	BezierExact Type = "bezierExact"
)

// DefaultBezier is the control-point set used when a bezier keyframe
// does not specify its own.
var DefaultBezier = [4]float64{0.25, 0.10, 0.25, 1.0}

// Apply maps a normalized segment position u (0..1) to its eased position.
// ctrl is only consulted for the bezier variants.
func Apply(t Type, u float64, ctrl [4]float64) float64 {
	switch t {
	case EaseIn:
		return ease.InQuad(u)
	case EaseOut:
		return ease.OutQuad(u)
	case EaseInOut:
		return ease.InOutQuad(u)
	case Bezier:
		return bezierApprox(u, ctrl)
	case BezierExact:
		return bezierSolve(u, ctrl)
	default:
		return u
	}
}

// bezierApprox is a one-pass polynomial approximation of a cubic bezier
// curve. It treats the control points as polynomial coefficients instead
// of solving the parametric curve for u, so it can diverge from a true
// cubic-bezier easing for extreme control points. Kept as-is for parity
// with existing projects; see bezierSolve for the exact variant.
func bezierApprox(u float64, ctrl [4]float64) float64 {
	cx := 3 * ctrl[0]
	bx := 3*(ctrl[2]-ctrl[0]) - cx
	ax := 1 - cx - bx
	return ((ax*u+bx)*u + cx) * u
}

// bezierSolve evaluates the true parametric cubic bezier easing defined
// by control points (x1,y1,x2,y2), solving x(s) = u for s with Newton
// iteration and a bisection fallback.
func bezierSolve(u float64, ctrl [4]float64) float64 {
	if u <= 0 {
		return 0
	}
	if u >= 1 {
		return 1
	}

	x1, y1, x2, y2 := ctrl[0], ctrl[1], ctrl[2], ctrl[3]

	sampleX := func(s float64) float64 {
		inv := 1 - s
		return 3*inv*inv*s*x1 + 3*inv*s*s*x2 + s*s*s
	}
	sampleY := func(s float64) float64 {
		inv := 1 - s
		return 3*inv*inv*s*y1 + 3*inv*s*s*y2 + s*s*s
	}
	derivX := func(s float64) float64 {
		inv := 1 - s
		return 3*inv*inv*x1 + 6*inv*s*(x2-x1) + 3*s*s*(1-x2)
	}

	// Newton iteration converges quickly for well-behaved curves
	s := u
	for i := 0; i < 8; i++ {
		d := derivX(s)
		if d == 0 {
			break
		}
		err := sampleX(s) - u
		if err > -1e-7 && err < 1e-7 {
			return sampleY(s)
		}
		s -= err / d
	}

	// Bisection fallback for flat or out-of-range derivatives
	lo, hi := 0.0, 1.0
	s = u
	for i := 0; i < 32; i++ {
		x := sampleX(s)
		if x < u {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}

	return sampleY(s)
}
