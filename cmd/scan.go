package cmd

import (
	"fmt"

	"photo-manager/core/config"
	"photo-manager/core/logger"
	"photo-manager/core/reconcile"
	"photo-manager/core/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the scan command
	scanSource    string
	scanLocalPath string
	scanVerbose   bool
)

// scanCmd enumerates a single source without comparing anything.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List the albums of a single source",
	Long: `Scan enumerates one side only and prints its album names and item counts.
Useful to verify a source is configured correctly before running a
comparison.

Examples:
  # List the local library
  photo-manager scan --source local --local-path ~/Pictures

  # List the remote albums
  photo-manager scan --source google
  photo-manager scan --source s3`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanSource, "source", "local", "Source to scan: local, google or s3")
	scanCmd.Flags().StringVar(&scanLocalPath, "local-path", "", "Local photo library root (local source only)")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Enable debug logging")

	RootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if scanLocalPath != "" {
		cfg.Local.Root = scanLocalPath
	}
	if scanVerbose {
		cfg.Log.Level = "debug"
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	var scanner reconcile.Scanner
	switch scanSource {
	case "local":
		scanner, err = buildLocalScanner(cfg, l)
	case server.RemoteGoogle, server.RemoteS3:
		scanner, err = buildRemoteScanner(ctx, scanSource, cfg, l)
	default:
		return fmt.Errorf("unknown source %q, use local, google or s3", scanSource)
	}
	if err != nil {
		return err
	}

	l.Info("Scanning source", zap.String("source", scanner.Name()))
	albums, err := scanner.Scan(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\n=== %s: %d albums, %d items ===\n", scanner.Name(), len(albums), albums.TotalItems())
	for _, album := range albums {
		fmt.Printf("  %-40s %6d items\n", album.Name, album.ItemCount)
	}
	fmt.Println()

	return nil
}
