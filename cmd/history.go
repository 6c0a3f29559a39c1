package cmd

import (
	"fmt"

	"photo-manager/core/config"
	"photo-manager/core/database"
	"photo-manager/core/logger"
	"photo-manager/feature/history"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd lists recorded comparison runs from the local database.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent comparison runs",
	Long: `History lists the recorded outcomes of past comparisons: when each run
happened, how many albums each side had, and how many discrepancies were
found.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list")

	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.History.Enabled {
		return fmt.Errorf("run history is disabled, set HISTORY_ENABLED=true")
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to history database: %w", err)
	}

	store := history.NewStore(db, l)
	if err := store.Migrate(); err != nil {
		return err
	}

	runs, err := store.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No comparison runs recorded yet.")
		return nil
	}

	fmt.Printf("\n=== Comparison History (%d runs) ===\n", len(runs))
	for _, run := range runs {
		id := run.RunID
		if len(id) > 8 {
			id = id[:8]
		}

		status := "in sync"
		if !run.InSync {
			status = fmt.Sprintf("%d missing remote, %d missing local, %d count mismatches",
				run.MissingRemote, run.MissingLocal, run.MismatchCount)
		}

		fmt.Printf("%s  %s  %s vs %s  local=%d remote=%d  %s\n",
			run.GeneratedAt.Format("2006-01-02 15:04"),
			id,
			run.LocalSource, run.RemoteSource,
			run.LocalTotal, run.RemoteTotal,
			status)
	}
	fmt.Println()

	return nil
}
