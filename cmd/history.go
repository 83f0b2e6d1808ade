package cmd

import (
	"errors"
	"fmt"

	"botc-assets/core/config"
	"botc-assets/core/logger"
	"botc-assets/feature/history"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent fetch runs",
	Long:  `Prints the most recent runs recorded in the history database (requires DATABASE_ENABLED=true).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cfg.Database.Enabled {
			return errors.New("history database is disabled, set DATABASE_ENABLED=true")
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		repo := openHistory(cfg.Database, logg)
		if repo == nil {
			return errors.New("history database unavailable")
		}

		runs, err := repo.List(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), history.RenderTable(runs))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", history.DefaultLimit, "Number of runs to show")
	RootCmd.AddCommand(historyCmd)
}
