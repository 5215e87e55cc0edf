package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calder-r/ndcube/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	Long:  `Display recent solver runs from the database, newest first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("no recorded solves")
		return nil
	}

	fmt.Printf("%-36s  %4s  %8s  %9s  %10s  %s\n",
		"SOLVE", "DIMS", "SCRAMBLE", "ROTATIONS", "DURATION", "STARTED")
	for _, s := range solves {
		fmt.Printf("%-36s  %4d  %8d  %9d  %10s  %s\n",
			s.SolveID, s.Dims, s.ShuffleCount, s.RotationCount,
			time.Duration(s.DurationMs)*time.Millisecond,
			s.StartedAt.Local().Format("2006-01-02 15:04"))
		if verbose && s.Notes != nil {
			fmt.Printf("%38s%s\n", "", *s.Notes)
		}
	}
	return nil
}
