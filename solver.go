package ndcube

import "math/rand"

// Solve runs a randomized local search until the cube is solved and
// returns the number of kept rotations. Each iteration applies a random
// rotation, then keeps or reverts it based on how the unsolvedness score
// moved: moves that did not worsen the score are kept 90% of the time,
// moves that worsened it are still kept 10% of the time so the walk can
// climb out of local optima. A revert is three more applications of the
// same rotation.
//
// This is a heuristic biased random walk, not a guaranteed-convergent
// algorithm; without WithMaxAttempts it runs until solved, however long
// that takes. The acceptance percentages are tunable via options but the
// defaults match the hand-tuned originals.
func (c *Cube) Solve(rng *rand.Rand, opts ...SolveOption) int {
	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var kept []Rotation
	attempts := 0
	for !c.IsSolved() {
		if cfg.maxAttempts > 0 && attempts >= cfg.maxAttempts {
			break
		}
		attempts++

		last := c.Unsolvedness()
		r := RandomRotation(rng, c.dims)
		c.Rotate(r)
		kept = append(kept, r)

		draw := rng.Intn(100)
		current := c.Unsolvedness()

		var revert bool
		if current > last {
			revert = draw < 100-cfg.acceptWorsen
		} else {
			revert = draw < 100-cfg.acceptImprove
		}
		if revert {
			c.UndoRotation(r)
			kept = kept[:len(kept)-1]
		}

		if cfg.progress != nil {
			cfg.progress(c.Unsolvedness(), len(kept))
		}
	}
	return len(kept)
}
