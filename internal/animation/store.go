package animation

import (
	"math"
	"sort"
	"sync"

	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/easing"
)

type trackKey struct {
	object   string
	property string
}

// Store owns every animation track of a project, keyed by
// (object, property). All methods are safe for concurrent use: a reader
// observes either the pre-edit or the post-edit state, never a
// half-sorted track.
type Store struct {
	mu     sync.RWMutex
	tracks map[trackKey]*track
	nextID int64
}

// NewStore creates an empty track store.
func NewStore() *Store {
	return &Store{
		tracks: make(map[trackKey]*track),
	}
}

// UpsertKeyframe inserts a keyframe into the (object, property) track,
// creating the track on first use. A keyframe within TimeTolerance of an
// existing one replaces it in place, keeping its ID. The stored keyframe
// is returned.
func (s *Store) UpsertKeyframe(object, property string, kf Keyframe) Keyframe {
	if kf.Easing == "" {
		kf.Easing = easing.Linear
	}
	if (kf.Easing == easing.Bezier || kf.Easing == easing.BezierExact) && kf.Bezier == ([4]float64{}) {
		kf.Bezier = easing.DefaultBezier
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := trackKey{object, property}
	tr, ok := s.tracks[key]
	if !ok {
		tr = &track{enabled: true}
		s.tracks[key] = tr
	}

	for i := range tr.keyframes {
		if math.Abs(tr.keyframes[i].Time-kf.Time) < TimeTolerance {
			kf.ID = tr.keyframes[i].ID
			tr.keyframes[i] = kf
			sortKeyframes(tr.keyframes)
			return kf
		}
	}

	s.nextID++
	kf.ID = s.nextID
	tr.keyframes = append(tr.keyframes, kf)
	sortKeyframes(tr.keyframes)
	return kf
}

// RemoveKeyframe deletes the keyframe with the given ID. It reports
// whether anything was removed. A track that loses its last keyframe is
// deleted along with it.
func (s *Store) RemoveKeyframe(object, property string, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := trackKey{object, property}
	tr, ok := s.tracks[key]
	if !ok {
		return false
	}

	for i := range tr.keyframes {
		if tr.keyframes[i].ID == id {
			tr.keyframes = append(tr.keyframes[:i], tr.keyframes[i+1:]...)
			if len(tr.keyframes) == 0 {
				delete(s.tracks, key)
			}
			return true
		}
	}

	return false
}

// SetEnabled toggles a track. Disabled tracks keep their keyframes but
// produce no value. No-op when the track does not exist.
func (s *Store) SetEnabled(object, property string, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tr, ok := s.tracks[trackKey{object, property}]; ok {
		tr.enabled = enabled
	}
}

// Keyframes returns a copy of the track's keyframes in time order,
// or nil when the track does not exist.
func (s *Store) Keyframes(object, property string) []Keyframe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tr, ok := s.tracks[trackKey{object, property}]
	if !ok {
		return nil
	}

	out := make([]Keyframe, len(tr.keyframes))
	copy(out, tr.keyframes)
	return out
}

// Properties lists every animated property of an object, enabled or not,
// sorted by name.
func (s *Store) Properties(object string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var props []string
	for key := range s.tracks {
		if key.object == object {
			props = append(props, key.property)
		}
	}
	sort.Strings(props)
	return props
}

// DeleteObject removes every track belonging to an object and returns
// the number of tracks removed.
func (s *Store) DeleteObject(object string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key := range s.tracks {
		if key.object == object {
			delete(s.tracks, key)
			removed++
		}
	}
	return removed
}

// Export captures every track as a TrackState slice, ordered by object
// then property, for snapshotting.
func (s *Store) Export() []TrackState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	states := make([]TrackState, 0, len(s.tracks))
	for key, tr := range s.tracks {
		kfs := make([]Keyframe, len(tr.keyframes))
		copy(kfs, tr.keyframes)
		states = append(states, TrackState{
			Object:    key.object,
			Property:  key.property,
			Enabled:   tr.enabled,
			Keyframes: kfs,
		})
	}

	sort.Slice(states, func(i, j int) bool {
		if states[i].Object != states[j].Object {
			return states[i].Object < states[j].Object
		}
		return states[i].Property < states[j].Property
	})
	return states
}

// Import replaces the store contents with the given track states.
// Keyframes are re-sorted and the ID counter is re-seeded past the
// highest imported ID.
func (s *Store) Import(states []TrackState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracks = make(map[trackKey]*track, len(states))
	s.nextID = 0
	for _, st := range states {
		if len(st.Keyframes) == 0 {
			continue
		}
		kfs := make([]Keyframe, len(st.Keyframes))
		copy(kfs, st.Keyframes)
		sortKeyframes(kfs)
		for _, kf := range kfs {
			if kf.ID > s.nextID {
				s.nextID = kf.ID
			}
		}
		s.tracks[trackKey{st.Object, st.Property}] = &track{
			enabled:   st.Enabled,
			keyframes: kfs,
		}
	}
}

func sortKeyframes(kfs []Keyframe) {
	sort.Slice(kfs, func(i, j int) bool {
		return kfs[i].Time < kfs[j].Time
	})
}
