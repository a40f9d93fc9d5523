package speed

import (
	"math"

	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/interp"
)

// Mode discriminates the speed profile variants.
type Mode string

const (
	ModeConstant Mode = "constant"
	ModeRamp     Mode = "ramp"
	ModeReverse  Mode = "reverse"
	ModeFreeze   Mode = "freeze"
)

const (
	// MinSpeed and MaxSpeed bound every speed magnitude; out-of-range
	// input is clamped silently, never rejected.
	MinSpeed = 0.05
	MaxSpeed = 100.0

	// RampTolerance is the replace window for ramp points. Deliberately
	// looser than the animation keyframe tolerance.
	RampTolerance = 0.01

	// integrationStep is the fixed Riemann step used to derive the output
	// duration of a ramp.
	integrationStep = 0.1
)

// RampPoint is one control point of a speed ramp. Ramp segments blend
// linearly; ramp points carry no easing.
type RampPoint struct {
	Time  float64 `yaml:"time"`
	Speed float64 `yaml:"speed"`
}

// Profile describes how one object's source time maps to output time.
// At most one profile exists per object.
type Profile struct {
	Object         string      `yaml:"object"`
	Mode           Mode        `yaml:"mode"`
	Speed          float64     `yaml:"speed,omitempty"`  // Constant and reverse (stored negative)
	Points         []RampPoint `yaml:"points,omitempty"` // Ramp only, sorted by time
	FreezeTime     float64     `yaml:"freezeTime,omitempty"`
	FreezeDuration float64     `yaml:"freezeDuration,omitempty"`
	Enabled        bool        `yaml:"enabled"`
}

// SpeedAt returns the instantaneous playback speed at source time t.
// A nil or disabled profile is pass-through (speed 1). Reverse reports
// its magnitude; playback direction is the caller's decision. A freeze
// maps its whole window to one source instant, so its nominal speed
// is 0.
func (p *Profile) SpeedAt(t float64) float64 {
	if p == nil || !p.Enabled {
		return 1
	}

	switch p.Mode {
	case ModeConstant, ModeReverse:
		return math.Abs(p.Speed)
	case ModeFreeze:
		return 0
	case ModeRamp:
		return p.rampSpeedAt(t)
	}

	return 1
}

func (p *Profile) rampSpeedAt(t float64) float64 {
	pts := p.Points
	if len(pts) == 0 {
		return 1
	}

	if t <= pts[0].Time {
		return pts[0].Speed
	}
	if t >= pts[len(pts)-1].Time {
		return pts[len(pts)-1].Speed
	}

	for i := 0; i < len(pts)-1; i++ {
		if t >= pts[i].Time && t < pts[i+1].Time {
			u := interp.Span(t, pts[i].Time, pts[i+1].Time)
			return interp.Lerp(pts[i].Speed, pts[i+1].Speed, u)
		}
	}

	return pts[len(pts)-1].Speed
}

// RemappedDuration computes the output duration implied by the profile
// for a clip of the given source duration. A freeze yields its own
// duration regardless of the source length. Ramps are integrated with a
// fixed 0.1 s Riemann sum; the final partial step is counted in full, a
// known truncation kept for parity with existing callers.
func (p *Profile) RemappedDuration(sourceDuration float64) float64 {
	if p == nil || !p.Enabled {
		return sourceDuration
	}

	switch p.Mode {
	case ModeFreeze:
		return p.FreezeDuration
	case ModeConstant, ModeReverse:
		s := math.Abs(p.Speed)
		if s == 0 {
			return sourceDuration
		}
		return sourceDuration / s
	case ModeRamp:
		if sourceDuration <= 0 {
			return 0
		}
		total := 0.0
		for t := 0.0; t < sourceDuration; t += integrationStep {
			total += integrationStep / p.rampSpeedAt(t)
		}
		return total
	}

	return sourceDuration
}

func clampSpeed(s float64) float64 {
	return interp.Clamp(math.Abs(s), MinSpeed, MaxSpeed)
}
