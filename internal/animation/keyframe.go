package animation

import (
	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/easing"
)

// TimeTolerance is the window within which two keyframe times are treated
// as the same instant: upserting inside it replaces the existing keyframe
// instead of adding a second one.
const TimeTolerance = 0.001

// Keyframe represents a property value at a specific time
type Keyframe struct {
	ID     int64       `yaml:"id"`
	Time   float64     `yaml:"time"`  // Time offset in seconds
	Value  float64     `yaml:"value"` // Unit and range are caller-defined
	Easing easing.Type `yaml:"easing"`
	Bezier [4]float64  `yaml:"bezier,flow"` // Control points, bezier easing only
}

// TrackState is the exportable form of one animation track
type TrackState struct {
	Object    string     `yaml:"object"`
	Property  string     `yaml:"property"`
	Enabled   bool       `yaml:"enabled"`
	Keyframes []Keyframe `yaml:"keyframes"`
}

// track is the store-internal representation. Keyframes are kept sorted
// ascending by time at all times.
type track struct {
	enabled   bool
	keyframes []Keyframe
}
