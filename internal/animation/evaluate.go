package animation

import (
	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/easing"
	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/interp"
)

// ValueAt calculates the track value at a given time by interpolating
// between the bracketing keyframes. The second return is false when the
// track is absent, disabled or empty.
func (s *Store) ValueAt(object, property string, t float64) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tr, ok := s.tracks[trackKey{object, property}]
	if !ok {
		return 0, false
	}
	return evaluate(tr, t)
}

// ValuesAt evaluates every enabled track of an object at time t.
// Properties without a value are omitted from the result.
func (s *Store) ValuesAt(object string, t float64) map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make(map[string]float64)
	for key, tr := range s.tracks {
		if key.object != object {
			continue
		}
		if v, ok := evaluate(tr, t); ok {
			values[key.property] = v
		}
	}
	return values
}

func evaluate(tr *track, t float64) (float64, bool) {
	if !tr.enabled || len(tr.keyframes) == 0 {
		return 0, false
	}

	kfs := tr.keyframes

	// Before the first or after the last keyframe the value is held flat
	if t <= kfs[0].Time {
		return kfs[0].Value, true
	}
	if t >= kfs[len(kfs)-1].Time {
		return kfs[len(kfs)-1].Value, true
	}

	// Find the surrounding keyframes. A linear scan is fine for the track
	// sizes an editing session produces; switch to a binary search if
	// tracks ever grow to thousands of keyframes.
	var prev, next Keyframe
	for i := 0; i < len(kfs)-1; i++ {
		if t >= kfs[i].Time && t < kfs[i+1].Time {
			prev = kfs[i]
			next = kfs[i+1]
			break
		}
	}

	// The easing of the keyframe being arrived at governs the segment;
	// the departing keyframe's easing is ignored.
	u := interp.Span(t, prev.Time, next.Time)
	u = easing.Apply(next.Easing, u, next.Bezier)

	return interp.Lerp(prev.Value, next.Value, u), true
}
