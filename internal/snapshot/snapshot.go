package snapshot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/animation"
	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/speed"
)

// Snapshot is the serializable state of both engine stores. The host
// application owns where and when it is written; the engine only
// guarantees that Capture followed by Apply reproduces the same
// evaluation results.
type Snapshot struct {
	Version  string                 `yaml:"version"`
	Tracks   []animation.TrackState `yaml:"tracks"`
	Profiles []speed.Profile        `yaml:"profiles"`
}

// Capture exports the current state of both stores.
func Capture(tracks *animation.Store, speeds *speed.Store) *Snapshot {
	return &Snapshot{
		Version:  "1.0",
		Tracks:   tracks.Export(),
		Profiles: speeds.Export(),
	}
}

// Apply replaces the contents of both stores with the snapshot state.
func (s *Snapshot) Apply(tracks *animation.Store, speeds *speed.Store) {
	tracks.Import(s.Tracks)
	speeds.Import(s.Profiles)
}

// Write writes a snapshot to a YAML file
func Write(s *Snapshot, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Read reads a snapshot from a YAML file
func Read(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	return &s, nil
}
