package speed

import (
	"testing"
)

func TestProfileReplacement(t *testing.T) {
	s := NewStore()

	s.SetRamp("clip1", []RampPoint{{Time: 0, Speed: 1}, {Time: 5, Speed: 2}})
	s.SetConstant("clip1", 3)

	p, ok := s.Get("clip1")
	if !ok {
		t.Fatal("Expected a profile")
	}
	if p.Mode != ModeConstant {
		t.Errorf("New profile should replace the old one, got mode %s", p.Mode)
	}
	if len(p.Points) != 0 {
		t.Errorf("Ramp points should not survive replacement: %v", p.Points)
	}
}

func TestRampPointsSortedAndDeduplicated(t *testing.T) {
	s := NewStore()

	s.SetRamp("clip1", []RampPoint{
		{Time: 5, Speed: 2},
		{Time: 0, Speed: 1},
		{Time: 5.004, Speed: 3}, // Within 0.01s of t=5, replaces it
	})

	p, _ := s.Get("clip1")
	if len(p.Points) != 2 {
		t.Fatalf("Expected 2 points after dedup, got %v", p.Points)
	}
	if p.Points[0].Time != 0 {
		t.Errorf("Points not sorted: %v", p.Points)
	}
	if p.Points[1].Speed != 3 {
		t.Errorf("Expected newer speed 3 retained, got %v", p.Points[1].Speed)
	}
}

func TestAddRampPoint(t *testing.T) {
	s := NewStore()

	if s.AddRampPoint("clip1", 0, 1) {
		t.Error("AddRampPoint without a profile should fail")
	}

	s.SetConstant("clip1", 2)
	if s.AddRampPoint("clip1", 0, 1) {
		t.Error("AddRampPoint on a non-ramp profile should fail")
	}

	s.SetRamp("clip1", []RampPoint{{Time: 0, Speed: 1}})
	if !s.AddRampPoint("clip1", 10, 2) {
		t.Fatal("AddRampPoint on a ramp should succeed")
	}
	if !s.AddRampPoint("clip1", 10.005, 4) {
		t.Fatal("Replacement within tolerance should succeed")
	}

	p, _ := s.Get("clip1")
	if len(p.Points) != 2 {
		t.Fatalf("Expected 2 points, got %v", p.Points)
	}
	if p.Points[1].Speed != 4 {
		t.Errorf("Expected replaced speed 4, got %v", p.Points[1].Speed)
	}

	// Clamping applies to ramp points too
	s.AddRampPoint("clip1", 20, 9999)
	p, _ = s.Get("clip1")
	if p.Points[2].Speed != MaxSpeed {
		t.Errorf("Expected clamped speed %v, got %v", MaxSpeed, p.Points[2].Speed)
	}
}

func TestRemoveRampPoint(t *testing.T) {
	s := NewStore()
	s.SetRamp("clip1", []RampPoint{{Time: 0, Speed: 1}, {Time: 10, Speed: 2}})

	if s.RemoveRampPoint("clip1", 5) {
		t.Error("Removal far from any point should fail")
	}
	if !s.RemoveRampPoint("clip1", 10.003) {
		t.Fatal("Removal within tolerance should succeed")
	}

	// Removing the last point removes the profile entirely
	if !s.RemoveRampPoint("clip1", 0) {
		t.Fatal("Removal of last point should succeed")
	}
	if _, ok := s.Get("clip1"); ok {
		t.Error("Profile should be gone after its last point was removed")
	}
}

func TestDelete(t *testing.T) {
	s := NewStore()
	s.SetFreeze("clip1", 1, 2)

	if !s.Delete("clip1") {
		t.Error("Delete of existing profile should report true")
	}
	if s.Delete("clip1") {
		t.Error("Second delete should report false")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewStore()
	s.SetRamp("clip1", []RampPoint{{Time: 0, Speed: 1}, {Time: 10, Speed: 2}})

	p, _ := s.Get("clip1")
	p.Points[0].Speed = 99

	fresh, _ := s.Get("clip1")
	if fresh.Points[0].Speed != 1 {
		t.Error("Mutating a returned profile must not affect the store")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := NewStore()
	s.SetRamp("clip1", []RampPoint{{Time: 0, Speed: 1}, {Time: 10, Speed: 2}})
	s.SetReverse("clip2", 2)
	s.SetEnabled("clip2", false)

	restored := NewStore()
	restored.Import(s.Export())

	if got := restored.SpeedAt("clip1", 5); got != 1.5 {
		t.Errorf("Ramp lost in round trip: speed %v", got)
	}
	p, ok := restored.Get("clip2")
	if !ok || p.Speed != -2 || p.Enabled {
		t.Errorf("Reverse profile lost in round trip: %+v ok=%v", p, ok)
	}
}
