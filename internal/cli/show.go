package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calder-r/ndcube"
)

var showShuffle int

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the cube state",
	Long: `Construct a cube, optionally scramble it, and render the full point
table with the solved flag and unsolvedness score.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVar(&showShuffle, "shuffle", 0, "Scramble with this many random rotations first")
}

func runShow(cmd *cobra.Command, args []string) error {
	cube, err := ndcube.New(dims)
	if err != nil {
		return err
	}

	if showShuffle > 0 {
		rng, usedSeed := newRNG()
		cube.Shuffle(rng, showShuffle)
		if verbose {
			fmt.Printf("scrambled with %d rotations (seed %d)\n", showShuffle, usedSeed)
		}
	}

	fmt.Print(renderCube(cube))
	fmt.Println(renderSummary(cube))
	return nil
}
