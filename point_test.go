package ndcube

import "testing"

func TestQuarterTurnTableIsPermutation(t *testing.T) {
	// The nine (from,to) entries must permute the nine coordinate pairs.
	seen := map[[2]int]bool{}
	for from := 0; from < 3; from++ {
		for to := 0; to < 3; to++ {
			next := quarterTurn[from][to]
			if seen[next] {
				t.Errorf("pair (%d,%d) produced twice", next[0], next[1])
			}
			seen[next] = true
		}
	}
	if len(seen) != 9 {
		t.Errorf("expected 9 distinct output pairs, got %d", len(seen))
	}
}

func TestQuarterTurnTableOrderFour(t *testing.T) {
	for from := 0; from < 3; from++ {
		for to := 0; to < 3; to++ {
			pair := [2]int{from, to}
			for i := 0; i < 4; i++ {
				pair = quarterTurn[pair[0]][pair[1]]
			}
			if pair != [2]int{from, to} {
				t.Errorf("four turns of (%d,%d) gave (%d,%d), want identity",
					from, to, pair[0], pair[1])
			}
		}
	}
}

func TestNewPointValidation(t *testing.T) {
	if _, err := NewPoint([]int{0, 1}); err == nil {
		t.Error("two-axis point should be rejected")
	}
	if _, err := NewPoint([]int{0, 1, 3}); err == nil {
		t.Error("coordinate 3 should be rejected")
	}
	p, err := NewPoint([]int{0, 1, 2})
	if err != nil {
		t.Fatalf("NewPoint: %v", err)
	}
	if !p.InOriginalPosition() || !p.InOriginalOrientation() {
		t.Error("fresh point should be in original position and orientation")
	}
}

func TestPointRotateOffLayerIsNoop(t *testing.T) {
	p, _ := NewPoint([]int{1, 1, 2})
	before := p.clone()
	// Layer side 0 along axis 0; the point sits at coordinate 1 there.
	p.Rotate(Rotation{Axis: 0, From: 1, To: 2, Side: SideLow})
	if !p.Equal(&before) {
		t.Error("point off the rotated layer must not change")
	}
}

func TestPointRotateTableScenario(t *testing.T) {
	// Point (0,1,2): on the side-0 layer of axis 0. The table maps the
	// (from,to) pair (1,2) to (0,1), so coords become (0,0,1) and the
	// orientation slots 1 and 2 trade places.
	p, _ := NewPoint([]int{0, 1, 2})
	p.Rotate(Rotation{Axis: 0, From: 1, To: 2, Side: SideLow})

	if got, want := p.Coords(), []int{0, 0, 1}; !intsEqual(got, want) {
		t.Errorf("coords = %v, want %v", got, want)
	}
	if got, want := p.Orientation(), []int{0, 2, 1}; !intsEqual(got, want) {
		t.Errorf("orientation = %v, want %v", got, want)
	}
	if p.InOriginalOrientation() {
		t.Error("orientation should no longer be identity")
	}
}

func TestPointRotateOrderFour(t *testing.T) {
	r := Rotation{Axis: 2, From: 0, To: 1, Side: SideHigh}
	for idx := 0; idx < 27; idx++ {
		p := pointFromIndex(idx, 3)
		before := p.clone()
		for i := 0; i < 4; i++ {
			p.Rotate(r)
		}
		if !p.Equal(&before) {
			t.Errorf("point %d: four rotations did not return to start", idx)
		}
	}
}

func TestPointRotatePanicsOnBadRotation(t *testing.T) {
	cases := []Rotation{
		{Axis: 0, From: 0, To: 1, Side: SideLow}, // axis == from
		{Axis: 0, From: 1, To: 1, Side: SideLow}, // from == to
		{Axis: 0, From: 1, To: 5, Side: SideLow}, // to out of range
	}
	for _, r := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Rotate(%+v) should panic", r)
				}
			}()
			p, _ := NewPoint([]int{0, 0, 0})
			p.Rotate(r)
		}()
	}
}

func TestIsCenter(t *testing.T) {
	cases := []struct {
		coords []int
		want   bool
	}{
		{[]int{1, 1, 0}, true},
		{[]int{1, 2, 1}, true},
		{[]int{1, 1, 1}, false}, // the core: every coordinate is 1
		{[]int{0, 1, 2}, false},
		{[]int{1, 1, 1, 2}, true},
	}
	for _, tc := range cases {
		p, _ := NewPoint(tc.coords)
		if got := p.IsCenter(); got != tc.want {
			t.Errorf("IsCenter(%v) = %v, want %v", tc.coords, got, tc.want)
		}
	}
}

func TestDistAndIncorrectness(t *testing.T) {
	p, _ := NewPoint([]int{0, 1, 2})
	if p.DistFromOriginal() != 0 || p.Incorrectness() != 0 {
		t.Error("fresh point should score zero")
	}

	p.Rotate(Rotation{Axis: 0, From: 1, To: 2, Side: SideLow})
	// coords went (0,1,2) -> (0,0,1): L1 distance 2, plus the twist penalty.
	if got := p.DistFromOriginal(); got != 2 {
		t.Errorf("DistFromOriginal = %d, want 2", got)
	}
	if got := p.Incorrectness(); got != 2+OrientationPenalty {
		t.Errorf("Incorrectness = %d, want %d", got, 2+OrientationPenalty)
	}
}
