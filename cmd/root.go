package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/onkeltom/page-load-comparison-analysis/report"
	"github.com/onkeltom/page-load-comparison-analysis/timing"
)

var (
	verbose      bool
	reportOutput string
	Logger       *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "plstudy <study-csv>",
		Short: "Compare page load performance across browser configurations",
		Long: `Plstudy loads a CSV of browser page load timing measurements,
normalizes the raw performance.timing timestamps into offsets from
navigationStart and renders an HTML report comparing page load
performance across the recorded browser configurations.`,
		Args: cobra.ExactArgs(1),
		Example: `  plstudy pageloadstudy.csv
  plstudy pageloadstudy.csv --output comparison.html
  plstudy pageloadstudy.csv -o report.html -v`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger()
		},
		RunE: runReport,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringVarP(&reportOutput, "output", "o", "report.html", "Path of the generated HTML report")

	// will be reconfigured in PersistentPreRun based on flags
	setupLogger()
}

func runReport(cmd *cobra.Command, args []string) error {
	studyFile := args[0]
	logger := GetLogger()

	if err := ValidateStudyFile(studyFile); err != nil {
		return fmt.Errorf("invalid study file: %w", err)
	}

	dataset, stats, err := LoadStudy(studyFile, logger)
	if err != nil {
		return err
	}

	meta := report.Metadata{
		SourcePath:  dataset.FilePath,
		FileSize:    dataset.FileSize,
		FileHash:    dataset.FileHash,
		Rows:        len(dataset.Records),
		SkippedRows: dataset.SkippedRows,
		GeneratedAt: time.Now(),
	}

	if err := report.Write(reportOutput, meta, stats); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	logger.Info("report generated", "output", reportOutput)
	return nil
}

// setupLogger configures the global slog logger based on the verbose flag
func setupLogger() {
	var opts *slog.HandlerOptions

	if verbose {
		opts = &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		}
	} else {
		opts = &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	if verbose {
		Logger.Debug("verbose logging enabled",
			"level", slog.LevelDebug.String(),
			"pid", os.Getpid())
	}
}

// GetLogger returns the global logger instance
func GetLogger() *slog.Logger {
	if Logger == nil {
		setupLogger()
	}
	return Logger
}

// ValidateStudyFile checks if the provided study CSV exists and is accessible
// check if the file exists, and it is not a directory.
func ValidateStudyFile(studyFile string) error {
	if studyFile == "" {
		return fmt.Errorf("study file path is required")
	}

	info, err := os.Stat(studyFile)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("study file does not exist: %s", studyFile)
		}
		return fmt.Errorf("error accessing study file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("provided path is a directory, not a file: %s", studyFile)
	}

	return nil
}

// LoadStudy runs the batch pipeline up to aggregation: load the CSV,
// normalize timestamps into offsets and compute the study statistics.
func LoadStudy(studyFile string, logger *slog.Logger) (*timing.Dataset, *timing.StudyStats, error) {
	dataset, err := timing.LoadCSV(studyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load study: %w", err)
	}

	logger.Info("study loaded",
		"rows", len(dataset.Records),
		"skipped_rows", dataset.SkippedRows,
		"file_size_kb", dataset.FileSize/1024,
		"fingerprint", dataset.FileHash,
		"load_time", dataset.LoadTime)

	table := timing.Normalize(dataset)
	stats := timing.Aggregate(table)

	logger.Debug("study normalized",
		"events", len(table.Columns),
		"browsers", len(stats.Browsers))

	if len(table.Columns) == 0 {
		return nil, nil, fmt.Errorf("no event column produced a valid offset, nothing to report")
	}

	return dataset, stats, nil
}
