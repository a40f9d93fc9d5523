package speed

import (
	"math"
	"sort"
	"sync"
)

// Store owns the speed profiles of a project, at most one per object.
// Setting any profile silently replaces whatever the object had before.
// Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// NewStore creates an empty profile store.
func NewStore() *Store {
	return &Store{
		profiles: make(map[string]*Profile),
	}
}

// SetConstant installs a constant-speed profile. The speed magnitude is
// clamped to [MinSpeed, MaxSpeed]; the sign is ignored.
func (s *Store) SetConstant(object string, speed float64) Profile {
	p := &Profile{
		Object:  object,
		Mode:    ModeConstant,
		Speed:   clampSpeed(speed),
		Enabled: true,
	}
	s.put(p)
	return *p
}

// SetRamp installs a ramp profile from an unordered point list. Points
// are sorted by time, points within RampTolerance of an earlier one
// replace it (last write wins), and speeds are clamped.
func (s *Store) SetRamp(object string, points []RampPoint) Profile {
	p := &Profile{
		Object:  object,
		Mode:    ModeRamp,
		Points:  normalizeRamp(points),
		Enabled: true,
	}
	s.put(p)
	return *p
}

// AddRampPoint inserts or replaces (within RampTolerance) a single point
// on the object's ramp. It reports false when the object has no ramp
// profile.
func (s *Store) AddRampPoint(object string, t, sp float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[object]
	if !ok || p.Mode != ModeRamp {
		return false
	}

	point := RampPoint{Time: t, Speed: clampSpeed(sp)}
	for i := range p.Points {
		if math.Abs(p.Points[i].Time-t) < RampTolerance {
			p.Points[i] = point
			sortRamp(p.Points)
			return true
		}
	}

	p.Points = append(p.Points, point)
	sortRamp(p.Points)
	return true
}

// RemoveRampPoint deletes the ramp point within RampTolerance of t.
// Removing the last point deletes the profile, mirroring track
// lifecycle. Reports false when nothing matched.
func (s *Store) RemoveRampPoint(object string, t float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[object]
	if !ok || p.Mode != ModeRamp {
		return false
	}

	for i := range p.Points {
		if math.Abs(p.Points[i].Time-t) < RampTolerance {
			p.Points = append(p.Points[:i], p.Points[i+1:]...)
			if len(p.Points) == 0 {
				delete(s.profiles, object)
			}
			return true
		}
	}

	return false
}

// SetReverse installs a reversed-playback profile. The speed is stored
// negative; evaluation uses its magnitude.
func (s *Store) SetReverse(object string, speed float64) Profile {
	p := &Profile{
		Object:  object,
		Mode:    ModeReverse,
		Speed:   -clampSpeed(speed),
		Enabled: true,
	}
	s.put(p)
	return *p
}

// SetFreeze installs a freeze-frame profile holding the source instant
// freezeTime for duration seconds of output.
func (s *Store) SetFreeze(object string, freezeTime, duration float64) Profile {
	p := &Profile{
		Object:         object,
		Mode:           ModeFreeze,
		FreezeTime:     freezeTime,
		FreezeDuration: duration,
		Enabled:        true,
	}
	s.put(p)
	return *p
}

// SetEnabled toggles the object's profile without deleting it. Reports
// false when the object has no profile.
func (s *Store) SetEnabled(object string, enabled bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[object]
	if !ok {
		return false
	}
	p.Enabled = enabled
	return true
}

// Get returns a copy of the object's profile.
func (s *Store) Get(object string) (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[object]
	if !ok {
		return Profile{}, false
	}
	return copyProfile(p), true
}

// Delete removes the object's profile. Reports whether one existed.
func (s *Store) Delete(object string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[object]; !ok {
		return false
	}
	delete(s.profiles, object)
	return true
}

// SpeedAt evaluates the object's instantaneous speed at source time t.
// Objects without a profile play at normal speed.
func (s *Store) SpeedAt(object string, t float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profiles[object].SpeedAt(t)
}

// RemappedDuration computes the output duration for the object's clip.
// Objects without a profile keep their source duration.
func (s *Store) RemappedDuration(object string, sourceDuration float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profiles[object].RemappedDuration(sourceDuration)
}

// Export captures every profile, ordered by object, for snapshotting.
func (s *Store) Export() []Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, copyProfile(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Object < out[j].Object })
	return out
}

// Import replaces the store contents with the given profiles. Ramp
// points are re-normalized so a hand-edited snapshot cannot break the
// sortedness invariant.
func (s *Store) Import(profiles []Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles = make(map[string]*Profile, len(profiles))
	for _, p := range profiles {
		cp := copyProfile(&p)
		if cp.Mode == ModeRamp {
			cp.Points = normalizeRamp(cp.Points)
		}
		s.profiles[cp.Object] = &cp
	}
}

func (s *Store) put(p *Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.Object] = p
}

func copyProfile(p *Profile) Profile {
	cp := *p
	if p.Points != nil {
		cp.Points = make([]RampPoint, len(p.Points))
		copy(cp.Points, p.Points)
	}
	return cp
}

// normalizeRamp sorts points by time, clamps speeds and collapses points
// closer together than RampTolerance (the later entry wins).
func normalizeRamp(points []RampPoint) []RampPoint {
	out := make([]RampPoint, 0, len(points))
	for _, pt := range points {
		pt.Speed = clampSpeed(pt.Speed)
		replaced := false
		for i := range out {
			if math.Abs(out[i].Time-pt.Time) < RampTolerance {
				out[i] = pt
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, pt)
		}
	}
	sortRamp(out)
	return out
}

func sortRamp(points []RampPoint) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].Time < points[j].Time
	})
}
