package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/animation"
	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/easing"
	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/speed"
)

func buildStores() (*animation.Store, *speed.Store) {
	tracks := animation.NewStore()
	tracks.UpsertKeyframe("clip1", "opacity", animation.Keyframe{Time: 0, Value: 0})
	tracks.UpsertKeyframe("clip1", "opacity", animation.Keyframe{Time: 10, Value: 1, Easing: easing.EaseInOut})
	tracks.UpsertKeyframe("clip1", "zoom", animation.Keyframe{Time: 2, Value: 1.5, Easing: easing.Bezier})
	tracks.SetEnabled("clip1", "zoom", false)

	speeds := speed.NewStore()
	speeds.SetRamp("clip1", []speed.RampPoint{{Time: 0, Speed: 1}, {Time: 10, Speed: 2}})
	speeds.SetFreeze("clip2", 5, 3)

	return tracks, speeds
}

func TestCaptureApplyRoundTrip(t *testing.T) {
	tracks, speeds := buildStores()
	snap := Capture(tracks, speeds)

	if snap.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", snap.Version)
	}
	if len(snap.Tracks) != 2 {
		t.Fatalf("Expected 2 tracks, got %d", len(snap.Tracks))
	}
	if len(snap.Profiles) != 2 {
		t.Fatalf("Expected 2 profiles, got %d", len(snap.Profiles))
	}

	restoredTracks := animation.NewStore()
	restoredSpeeds := speed.NewStore()
	snap.Apply(restoredTracks, restoredSpeeds)

	for _, tm := range []float64{0, 2.5, 5, 10} {
		want, wantOK := tracks.ValueAt("clip1", "opacity", tm)
		got, gotOK := restoredTracks.ValueAt("clip1", "opacity", tm)
		if want != got || wantOK != gotOK {
			t.Errorf("Value mismatch at t=%v: %v/%v vs %v/%v", tm, want, wantOK, got, gotOK)
		}
	}

	if _, ok := restoredTracks.ValueAt("clip1", "zoom", 2); ok {
		t.Error("Disabled track became enabled through the snapshot")
	}

	if got := restoredSpeeds.SpeedAt("clip1", 5); got != 1.5 {
		t.Errorf("Ramp speed mismatch after restore: %v", got)
	}
	if got := restoredSpeeds.RemappedDuration("clip2", 99); got != 3 {
		t.Errorf("Freeze duration mismatch after restore: %v", got)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	tracks, speeds := buildStores()
	snap := Capture(tracks, speeds)

	path := filepath.Join(t.TempDir(), "project.yaml")
	if err := Write(snap, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	read, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if read.Version != snap.Version {
		t.Errorf("Version mismatch: %s vs %s", read.Version, snap.Version)
	}
	if len(read.Tracks) != len(snap.Tracks) {
		t.Errorf("Track count mismatch: %d vs %d", len(read.Tracks), len(snap.Tracks))
	}

	restoredTracks := animation.NewStore()
	restoredSpeeds := speed.NewStore()
	read.Apply(restoredTracks, restoredSpeeds)

	want, _ := tracks.ValueAt("clip1", "opacity", 7)
	got, ok := restoredTracks.ValueAt("clip1", "opacity", 7)
	if !ok || want != got {
		t.Errorf("Evaluation mismatch after file round trip: %v vs %v", want, got)
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
