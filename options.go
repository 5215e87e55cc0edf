package ndcube

// SolveOption configures the randomized solver.
type SolveOption func(*solveConfig)

type solveConfig struct {
	acceptImprove int
	acceptWorsen  int
	maxAttempts   int
	progress      func(unsolvedness, kept int)
}

func defaultSolveConfig() solveConfig {
	return solveConfig{
		acceptImprove: 90,
		acceptWorsen:  10,
	}
}

// WithAcceptImprove sets the percentage chance (0-100) of keeping a
// rotation that did not increase unsolvedness. Default 90.
func WithAcceptImprove(pct int) SolveOption {
	return func(c *solveConfig) {
		c.acceptImprove = pct
	}
}

// WithAcceptWorsen sets the percentage chance (0-100) of keeping a
// rotation that increased unsolvedness. Keeping the occasional bad move
// lets the search escape local optima. Default 10.
func WithAcceptWorsen(pct int) SolveOption {
	return func(c *solveConfig) {
		c.acceptWorsen = pct
	}
}

// WithMaxAttempts bounds the number of rotation attempts before the
// solver gives up. Zero (the default) means unbounded: the search runs
// until the cube is solved.
func WithMaxAttempts(n int) SolveOption {
	return func(c *solveConfig) {
		c.maxAttempts = n
	}
}

// WithProgress sets a callback invoked after every attempt with the
// current unsolvedness and the number of kept rotations.
func WithProgress(fn func(unsolvedness, kept int)) SolveOption {
	return func(c *solveConfig) {
		c.progress = fn
	}
}
