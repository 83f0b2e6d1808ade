package cmd

import (
	"fmt"
	"os"

	"botc-assets/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command. Run without a subcommand it fetches assets.
var RootCmd = &cobra.Command{
	Use:   "botc-assets",
	Short: "Download assets for BotC sheets",
	Long: `botc-assets downloads Blood on the Clocktower game data, character icons and
scripts into a local assets directory. Every run skips what is already on disk,
so an interrupted run is resumed by running it again.

With no category flag the default set is fetched: --json --icons --extra-icons
--all-scripts --homebrew.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFetch,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We use "debug" level configuration to get ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	registerFetchFlags(RootCmd)
}
