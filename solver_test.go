package ndcube

import (
	"math/rand"
	"testing"
)

// scriptedSource feeds predetermined values to rand.Intn so solver tests
// can force a specific rotation and acceptance draw. Each scripted value
// v is returned as v<<32, which makes Intn(n) yield exactly v for v < n.
type scriptedSource struct {
	vals []int64
	i    int
}

func (s *scriptedSource) Int63() int64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v << 32
}

func (s *scriptedSource) Seed(int64) {}

// One solver iteration consumes five draws: side, axis, from, to, and
// the acceptance percentile.
func scriptedRand(vals ...int64) *rand.Rand {
	return rand.New(&scriptedSource{vals: vals})
}

func TestSolveOnSolvedCubeReturnsZero(t *testing.T) {
	c, _ := New(3)
	if got := c.Solve(rand.New(rand.NewSource(1))); got != 0 {
		t.Errorf("Solve on a solved cube = %d, want 0", got)
	}
}

func TestSolveKeepsImprovingMove(t *testing.T) {
	c, _ := New(3)
	c.Rotate(Rotation{Axis: 0, From: 1, To: 2, Side: SideLow})

	// Script the exact inverse rotation (0,2,1 side 0) with percentile 50:
	// the move solves the cube and 50 >= 10, so it is kept.
	rng := scriptedRand(0, 0, 2, 1, 50)
	got := c.Solve(rng)
	if got != 1 {
		t.Errorf("Solve = %d rotations, want 1", got)
	}
	if !c.IsSolved() {
		t.Error("cube should be solved")
	}
}

func TestSolveRevertsImprovingMoveTenPercent(t *testing.T) {
	c, _ := New(3)
	c.Rotate(Rotation{Axis: 0, From: 1, To: 2, Side: SideLow})
	scrambled := c.Clone()

	// First iteration scripts the inverse with percentile 5 (< 10), so
	// the improving move is reverted; the second scripts it again with
	// percentile 50 and it sticks.
	rng := scriptedRand(
		0, 0, 2, 1, 5,
		0, 0, 2, 1, 50,
	)

	var trace [][2]int
	got := c.Solve(rng, WithProgress(func(unsolvedness, kept int) {
		trace = append(trace, [2]int{unsolvedness, kept})
	}))

	if got != 1 {
		t.Fatalf("Solve = %d rotations, want 1", got)
	}
	if len(trace) != 2 {
		t.Fatalf("got %d attempts, want 2", len(trace))
	}
	if trace[0][1] != 0 || trace[0][0] != scrambled.Unsolvedness() {
		t.Errorf("after reverted attempt: (unsolvedness, kept) = %v, want (%d, 0)",
			trace[0], scrambled.Unsolvedness())
	}
	if trace[1] != [2]int{0, 1} {
		t.Errorf("after kept attempt: (unsolvedness, kept) = %v, want (0, 1)", trace[1])
	}
}

func TestSolveKeepsWorseMoveTenPercent(t *testing.T) {
	c, _ := New(3)
	c.Rotate(Rotation{Axis: 0, From: 1, To: 2, Side: SideLow})
	last := c.Unsolvedness()

	// Rotation (axis 1, from 0, to 2, side 2) disturbs an untouched
	// layer, so the score gets worse; percentile 95 >= 90 keeps it anyway.
	rng := scriptedRand(1, 1, 0, 2, 95)
	got := c.Solve(rng, WithMaxAttempts(1))

	if got != 1 {
		t.Errorf("Solve = %d kept rotations, want 1", got)
	}
	if c.Unsolvedness() <= last {
		t.Errorf("unsolvedness = %d, expected worse than %d", c.Unsolvedness(), last)
	}
}

func TestSolveRevertsWorseMoveNinetyPercent(t *testing.T) {
	c, _ := New(3)
	c.Rotate(Rotation{Axis: 0, From: 1, To: 2, Side: SideLow})
	scrambled := c.Clone()

	// Same worsening rotation, percentile 50 < 90: reverted.
	rng := scriptedRand(1, 1, 0, 2, 50)
	got := c.Solve(rng, WithMaxAttempts(1))

	if got != 0 {
		t.Errorf("Solve = %d kept rotations, want 0", got)
	}
	if !c.Equal(scrambled) {
		t.Error("reverted attempt should leave the cube unchanged")
	}
}

func TestSolveRejectEverythingNeverMoves(t *testing.T) {
	c, _ := New(3)
	rng := rand.New(rand.NewSource(17))
	c.Shuffle(rng, 40)
	scrambled := c.Clone()

	got := c.Solve(rng,
		WithAcceptImprove(0),
		WithAcceptWorsen(0),
		WithMaxAttempts(25),
	)
	if got != 0 {
		t.Errorf("Solve = %d kept rotations, want 0", got)
	}
	if !c.Equal(scrambled) {
		t.Error("with zero acceptance every attempt must be reverted")
	}
}

func TestSolveMaxAttemptsStopsUnsolved(t *testing.T) {
	c, _ := New(4)
	rng := rand.New(rand.NewSource(23))
	c.Shuffle(rng, 60)

	kept := c.Solve(rng, WithMaxAttempts(10))
	if c.IsSolved() {
		t.Skip("freak solve within 10 attempts")
	}
	if kept > 10 {
		t.Errorf("kept %d rotations, more than the attempt cap", kept)
	}
}

func TestSolveUnwindsScramble(t *testing.T) {
	// Scramble with two known rotations, then script the solver to draw
	// their exact inverses in reverse order. Percentile 95 keeps a move
	// in both acceptance branches (95 >= 90 and 95 >= 10), so the walk
	// reaches the solved state in exactly two kept rotations no matter
	// which way each intermediate score moved.
	c, _ := New(3)
	c.Rotate(Rotation{Axis: 0, From: 1, To: 2, Side: SideLow})
	c.Rotate(Rotation{Axis: 1, From: 2, To: 0, Side: SideHigh})

	rng := scriptedRand(
		1, 1, 0, 2, 95, // inverse of the second scramble rotation
		0, 0, 2, 1, 95, // inverse of the first
	)
	kept := c.Solve(rng)

	if !c.IsSolved() {
		t.Fatal("cube should be solved after unwinding the scramble")
	}
	if kept != 2 {
		t.Errorf("Solve = %d kept rotations, want 2", kept)
	}
}
