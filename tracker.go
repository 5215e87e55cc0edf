package ndcube

import "math/rand"

// Tracker wraps a Cube with an applied-rotation history and solved-state
// change detection. Drivers use it for interactive play: apply rotations
// from user input, undo the last one, and get told when the cube reaches
// the solved state.
type Tracker struct {
	cube           *Cube
	history        []Rotation
	wasSolved      bool
	solvedCallback func(moves int)
}

// NewTracker creates a tracker around a freshly solved cube of the given
// dimension count.
func NewTracker(dims int) (*Tracker, error) {
	cube, err := New(dims)
	if err != nil {
		return nil, err
	}
	return &Tracker{cube: cube, wasSolved: true}, nil
}

// SetSolvedCallback sets a callback that fires when a rotation transitions
// the cube from unsolved to solved, passing the history length.
func (t *Tracker) SetSolvedCallback(cb func(moves int)) {
	t.solvedCallback = cb
}

// Apply validates the rotation against the cube's dimensions, applies it,
// and records it in the history. Malformed rotations are rejected with an
// error before they reach the cube.
func (t *Tracker) Apply(r Rotation) error {
	if err := r.Validate(t.cube.Dims()); err != nil {
		return err
	}
	t.cube.Rotate(r)
	t.history = append(t.history, r)
	t.checkSolvedTransition()
	return nil
}

// Undo reverts the most recent rotation and drops it from the history.
// It reports whether there was anything to undo.
func (t *Tracker) Undo() bool {
	if len(t.history) == 0 {
		return false
	}
	last := t.history[len(t.history)-1]
	t.cube.UndoRotation(last)
	t.history = t.history[:len(t.history)-1]
	t.checkSolvedTransition()
	return true
}

func (t *Tracker) checkSolvedTransition() {
	solved := t.cube.IsSolved()
	if solved && !t.wasSolved && t.solvedCallback != nil {
		t.solvedCallback(len(t.history))
	}
	t.wasSolved = solved
}

// Shuffle scrambles the underlying cube without touching the history, so
// a later Undo never walks back through the scramble.
func (t *Tracker) Shuffle(rng *rand.Rand, times int) {
	t.cube.Shuffle(rng, times)
	t.wasSolved = t.cube.IsSolved()
}

// Reset returns the tracker to a solved cube and clears the history.
func (t *Tracker) Reset() {
	cube, _ := New(t.cube.Dims())
	t.cube = cube
	t.history = nil
	t.wasSolved = true
}

// History returns a copy of the applied-rotation history.
func (t *Tracker) History() []Rotation {
	out := make([]Rotation, len(t.history))
	copy(out, t.history)
	return out
}

// IsSolved reports whether the underlying cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Unsolvedness returns the underlying cube's unsolvedness score.
func (t *Tracker) Unsolvedness() int {
	return t.cube.Unsolvedness()
}

// Cube returns the underlying cube for rendering. Callers must not
// mutate it directly; apply rotations through the tracker so the history
// stays consistent.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
