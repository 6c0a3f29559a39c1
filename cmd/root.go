package cmd

import (
	"fmt"
	"os"

	"photo-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the top-level command. Subcommands attach themselves in their
// init functions.
var RootCmd = &cobra.Command{
	Use:   "photo-manager",
	Short: "Photo library comparison tool",
	Long: `Photo Manager compares a filesystem photo library against a cloud album
service and reports where they diverge: albums missing on either side and
matched albums whose item counts disagree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Errors surface through the console logger; debug
// level selects the development preset with ISO8601 timestamps.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	if l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"}); logErr == nil {
		l.Error("Command failed", zap.Error(err))
		_ = l.Sync()
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}
