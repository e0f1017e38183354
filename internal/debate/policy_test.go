package debate

import "testing"

func TestPhaseFor_Thresholds(t *testing.T) {
	cases := []struct {
		turn int
		want Phase
	}{
		{0, PhaseOpening},
		{1, PhaseRebuttal},
		{2, PhaseRebuttal},
		{3, PhaseRebuttal},
		{4, PhaseClosing},
		{5, PhaseClosing},
		{100, PhaseClosing},
	}
	for _, tc := range cases {
		if got := PhaseFor(tc.turn); got != tc.want {
			t.Errorf("PhaseFor(%d) = %s, want %s", tc.turn, got, tc.want)
		}
	}
}

func TestPhaseFor_NeverRegresses(t *testing.T) {
	rank := map[Phase]int{PhaseOpening: 0, PhaseRebuttal: 1, PhaseClosing: 2}
	prev := PhaseFor(0)
	for turn := 1; turn <= 50; turn++ {
		cur := PhaseFor(turn)
		if rank[cur] < rank[prev] {
			t.Fatalf("phase regressed at turn %d: %s after %s", turn, cur, prev)
		}
		prev = cur
	}
}

func TestPhase_InstructionsNonEmpty(t *testing.T) {
	for _, p := range []Phase{PhaseOpening, PhaseRebuttal, PhaseClosing} {
		if p.Instructions() == "" {
			t.Errorf("phase %s has no instruction template", p)
		}
	}
}
