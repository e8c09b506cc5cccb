package diag

import "testing"

type aRanger struct {
	Ranging
}

func TestEmbeddingRangingImplementsRanger(t *testing.T) {
	r := Ranging{1, 10}
	s := Ranger(aRanger{Ranging{1, 10}})
	if s.Range() != r {
		t.Errorf("s.Range() = %v, want %v", s.Range(), r)
	}
}

func TestRangingContains(t *testing.T) {
	r := Ranging{2, 5}
	for p, want := range map[int]bool{1: false, 2: true, 4: true, 5: true, 6: false} {
		if got := r.Contains(p); got != want {
			t.Errorf("Ranging{2, 5}.Contains(%d) = %v, want %v", p, got, want)
		}
	}
}

func TestMixedRanging(t *testing.T) {
	got := MixedRanging(Ranging{1, 2}, Ranging{4, 7})
	if want := (Ranging{1, 7}); got != want {
		t.Errorf("MixedRanging -> %v, want %v", got, want)
	}
}
