// Package cli implements the command-line interface for ndcube.
package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/calder-r/ndcube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
	dims    int
	seed    int64
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "ndcube",
	Short: "N-dimensional hypercube puzzle",
	Long: `ndcube - an N-dimensional Rubik's-Cube analogue.

Scramble and inspect a hypercube puzzle of any dimension count from 3 up,
run the randomized solver against it, or solve it yourself in an
interactive session. Completed solver runs are recorded to a local
SQLite database for later comparison.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.ndcube/ndcube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().IntVar(&dims, "dims", 3, "Cube dimension count (minimum 3)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed (0 = time-based)")
}

// openDB opens the database from the --db flag or the default path.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}

// newRNG builds the run's random generator, resolving a zero seed to the
// current time. It returns the seed actually used so it can be recorded.
func newRNG() (*rand.Rand, int64) {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s)), s
}
