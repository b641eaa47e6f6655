package models

import "testing"

// TestVolume verifies the volume identity: weight × reps when both present,
// 0 when either is absent, never negative for valid records.
func TestVolume(t *testing.T) {
	rec := SetRecord{
		Metrics: map[string]Metrics{
			"Ninaad":  {Weight: Float(60), Reps: Int(8)},
			"Vasanta": {Weight: Float(50)},
		},
	}

	if got := rec.Volume("Ninaad"); got != 480 {
		t.Errorf("Volume(Ninaad) = %v, want 480", got)
	}
	if got := rec.Volume("Vasanta"); got != 0 {
		t.Errorf("Volume with absent reps = %v, want 0", got)
	}
	if got := rec.Volume("Nobody"); got != 0 {
		t.Errorf("Volume for untracked athlete = %v, want 0", got)
	}

	zero := SetRecord{Metrics: map[string]Metrics{"Ninaad": {Weight: Float(0), Reps: Int(10)}}}
	if got := zero.Volume("Ninaad"); got != 0 {
		t.Errorf("Volume with zero weight = %v, want 0", got)
	}
}

// TestHasSet verifies only 1..4 count as usable set numbers.
func TestHasSet(t *testing.T) {
	for n, want := range map[int]bool{0: false, 1: true, 4: true, 5: false, -1: false} {
		if got := (SetRecord{SetNumber: n}).HasSet(); got != want {
			t.Errorf("HasSet(%d) = %v, want %v", n, got, want)
		}
	}
}
