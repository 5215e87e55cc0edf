package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calder-r/ndcube"
	"github.com/calder-r/ndcube/internal/storage"
)

var (
	solveShuffle     int
	solveProgress    bool
	solveMaxAttempts int
	solveNotes       string
	solveNoStore     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Scramble a cube and run the randomized solver",
	Long: `Scramble a fresh cube and run the randomized local-search solver until
it reaches the solved state.

The solver is a heuristic biased random walk; it is not guaranteed to
finish in bounded time. Use --max-attempts to give up after a number of
tried rotations. Completed solves are recorded to the database unless
--no-store is given.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&solveShuffle, "shuffle", 100, "Number of random scramble rotations")
	solveCmd.Flags().BoolVar(&solveProgress, "progress", false, "Print the unsolvedness score after every attempt")
	solveCmd.Flags().IntVar(&solveMaxAttempts, "max-attempts", 0, "Give up after this many attempted rotations (0 = never)")
	solveCmd.Flags().StringVar(&solveNotes, "notes", "", "Notes to store with this solve")
	solveCmd.Flags().BoolVar(&solveNoStore, "no-store", false, "Do not record the solve to the database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cube, err := ndcube.New(dims)
	if err != nil {
		return err
	}

	rng, usedSeed := newRNG()
	cube.Shuffle(rng, solveShuffle)
	if verbose {
		fmt.Printf("scrambled %d-dimensional cube with %d rotations (seed %d), unsolvedness %d\n",
			dims, solveShuffle, usedSeed, cube.Unsolvedness())
	}

	opts := []ndcube.SolveOption{}
	if solveMaxAttempts > 0 {
		opts = append(opts, ndcube.WithMaxAttempts(solveMaxAttempts))
	}
	if solveProgress {
		opts = append(opts, ndcube.WithProgress(func(unsolvedness, kept int) {
			fmt.Println(unsolvedness)
		}))
	}

	started := time.Now()
	moves := cube.Solve(rng, opts...)
	elapsed := time.Since(started)

	if !cube.IsSolved() {
		return fmt.Errorf("gave up after %d attempts with unsolvedness %d", solveMaxAttempts, cube.Unsolvedness())
	}

	fmt.Printf("solved in %d rotations (%s)\n", moves, elapsed.Round(time.Millisecond))

	if solveNoStore {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	var notes *string
	if solveNotes != "" {
		notes = &solveNotes
	}
	repo := storage.NewSolveRepository(db)
	id, err := repo.Create(storage.Solve{
		Dims:          dims,
		ShuffleCount:  solveShuffle,
		RotationCount: moves,
		DurationMs:    elapsed.Milliseconds(),
		Seed:          usedSeed,
		StartedAt:     started.UTC(),
		Notes:         notes,
	})
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("recorded solve %s\n", id)
	}
	return nil
}
