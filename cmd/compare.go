package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"photo-manager/core/config"
	"photo-manager/core/logger"
	"photo-manager/core/reconcile"
	"photo-manager/feature/compare"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the compare command
	compareLocalPath   string
	compareRemote      string
	compareCredentials string
	compareOutput      string
	compareSimilarity  float64
	compareVerbose     bool
)

// compareCmd runs one comparison between the local library and the remote
// service and prints the classified differences.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the local photo library against the remote service",
	Long: `Compare scans both photo collections, matches albums across them by name
similarity, and reports albums missing on either side along with matched
albums whose item counts differ.

The command exits zero whenever the comparison itself succeeds, regardless
of how many discrepancies it finds. Scan failures (unreadable library path,
missing credentials, remote errors) exit non-zero.

Examples:
  # Compare the configured library against Google Photos
  photo-manager compare --local-path ~/Pictures

  # Stricter matching, full report saved as JSON
  photo-manager compare --local-path ~/Pictures --similarity 0.9 --output report.json

  # Compare against the S3 mirror instead
  photo-manager compare --local-path ~/Pictures --remote s3`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareLocalPath, "local-path", "", "Local photo library root (defaults to configured LOCAL_ROOT)")
	compareCmd.Flags().StringVar(&compareRemote, "remote", "", "Remote side: google or s3 (defaults to configured SERVER_REMOTE)")
	compareCmd.Flags().StringVar(&compareCredentials, "credentials", "", "OAuth client secrets JSON for the Google remote")
	compareCmd.Flags().StringVar(&compareOutput, "output", "", "Write the full JSON report to this file")
	compareCmd.Flags().Float64Var(&compareSimilarity, "similarity", reconcile.DefaultThreshold, "Album name similarity threshold (0-1)")
	compareCmd.Flags().BoolVarP(&compareVerbose, "verbose", "v", false, "Enable debug logging")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration and overlay command line flags
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if compareLocalPath != "" {
		cfg.Local.Root = compareLocalPath
	}
	if compareRemote != "" {
		cfg.Server.Remote = compareRemote
	}
	if compareCredentials != "" {
		cfg.Google.CredentialsFile = compareCredentials
	}
	if cmd.Flags().Changed("similarity") {
		cfg.Compare.Threshold = compareSimilarity
	}
	if compareVerbose {
		cfg.Log.Level = "debug"
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	localScanner, err := buildLocalScanner(cfg, l)
	if err != nil {
		return err
	}
	remoteScanner, err := buildRemoteScanner(ctx, cfg.Server.Remote, cfg, l)
	if err != nil {
		return err
	}

	l.Info("Starting comparison",
		zap.String("local_root", cfg.Local.Root),
		zap.String("remote", remoteScanner.Name()),
		zap.Float64("threshold", cfg.Compare.Threshold))

	store := connectHistory(cfg, l)

	svc := compare.NewService(localScanner, remoteScanner, cfg.Compare, store, l)
	report, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	printComparisonReport(report)

	if compareOutput != "" {
		if err := saveReport(report, compareOutput); err != nil {
			return err
		}
		l.Info("Report saved", zap.String("file", compareOutput))
	}

	return nil
}

// printComparisonReport renders the report for the console: summary first,
// then the missing albums per side, then the count mismatches.
func printComparisonReport(report *reconcile.Report) {
	fmt.Println("\n=== Comparison Results ===")
	fmt.Printf("Local Albums:   %d\n", report.Summary.LocalTotal)
	fmt.Printf("Remote Albums:  %d\n", report.Summary.RemoteTotal)
	fmt.Printf("Matched Exact:  %d\n", report.Summary.MatchedExact)

	if len(report.MissingInRemote) > 0 {
		fmt.Printf("\nMissing in remote service (%d):\n", len(report.MissingInRemote))
		for _, album := range report.MissingInRemote {
			fmt.Printf("  - %s (%d items)\n", album.Name, album.ItemCount)
		}
	}

	if len(report.MissingInLocal) > 0 {
		fmt.Printf("\nMissing in local library (%d):\n", len(report.MissingInLocal))
		for _, album := range report.MissingInLocal {
			fmt.Printf("  - %s (%d items)\n", album.Name, album.ItemCount)
		}
	}

	if len(report.CountMismatches) > 0 {
		fmt.Printf("\nCount mismatches (%d):\n", len(report.CountMismatches))
		for _, m := range report.CountMismatches {
			name := m.LocalName
			if m.RemoteName != m.LocalName {
				// Fuzzy match: show which remote album was paired
				name = m.LocalName + " ~ " + m.RemoteName
			}
			fmt.Printf("  - %s: local=%d, remote=%d (diff: %+d)\n", name, m.LocalCount, m.RemoteCount, m.Diff)
		}
	}

	if report.InSync {
		fmt.Println("\n✨ Libraries are in sync!")
	}
	fmt.Println()
}

// saveReport writes the report document as indented JSON.
func saveReport(report *reconcile.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}
