// Package ndcube models a generalized N-dimensional hypercube puzzle, the
// Rubik's Cube analogue in any number of dimensions of three or more.
//
// # Model
//
// A cube of dimension count dims owns 3^dims points, one per cell of the
// {0,1,2}^dims coordinate space. Each point carries its fixed solved
// coordinates, its current coordinates, and an orientation permutation
// that records how it has been twisted. A Rotation quarter-turns one face
// layer: it addresses a layer by axis and side, and turns it in the plane
// spanned by two further axes.
//
// # Quick start
//
// Construct a cube, scramble it, and run the randomized solver:
//
//	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
//	cube, err := ndcube.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cube.Shuffle(rng, 100)
//	moves := cube.Solve(rng)
//	fmt.Printf("solved in %d rotations\n", moves)
//
// Rotations can be applied directly:
//
//	// Turn the top layer: high layer along axis 1, axis 2 toward axis 0.
//	cube.Rotate(ndcube.Rotation{Axis: 1, From: 2, To: 0, Side: ndcube.SideHigh})
//	cube.UndoRotation(ndcube.Rotation{Axis: 1, From: 2, To: 0, Side: ndcube.SideHigh})
//
// Or parsed from four-digit notation and validated at the boundary:
//
//	r, err := ndcube.ParseRotation("1202")
//	if err == nil {
//	    err = r.Validate(cube.Dims())
//	}
//
// # Solver
//
// Solve is a biased random walk: random rotations are kept or reverted
// depending on whether the cube's unsolvedness score improved, with a
// small chance of keeping a bad move to escape local optima. It is a
// heuristic with no bounded-time guarantee; see WithMaxAttempts.
//
// # Interactive play
//
// Tracker wraps a cube with input validation, an undo history, and a
// solved-transition callback, which is everything an interactive driver
// needs. The ndcube command in cmd/ndcube is such a driver.
package ndcube
