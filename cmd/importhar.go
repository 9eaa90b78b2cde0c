package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onkeltom/page-load-comparison-analysis/timing"
)

var (
	importBrowser string
	importOutput  string
)

var importHARCmd = &cobra.Command{
	Use:   "import-har <har-file>",
	Short: "Append pages from a HAR capture to a study CSV",
	Long: `Convert the pages of a HAR (HTTP Archive) capture into study rows and
append them to a study CSV, creating the file if needed. HAR page
timings only cover the DOMContentLoaded and load events, so imported
rows are sparse compared to a full performance.timing capture.

The browser configuration the HAR was recorded under must be given
explicitly, since HAR files do not carry it.`,
	Args: cobra.ExactArgs(1),
	Example: `  plstudy import-har recording.har --browser chrome_normal
  plstudy import-har recording.har -b firefox_private -o pageloadstudy.csv`,
	RunE: runImportHAR,
}

func init() {
	rootCmd.AddCommand(importHARCmd)

	importHARCmd.Flags().StringVarP(&importBrowser, "browser", "b", "", "Capture label (chrome_normal, chrome_private, firefox_normal, firefox_private)")
	importHARCmd.Flags().StringVarP(&importOutput, "output", "o", "pageloadstudy.csv", "Study CSV to append to")
	_ = importHARCmd.MarkFlagRequired("browser")
}

func runImportHAR(cmd *cobra.Command, args []string) error {
	harFile := args[0]
	logger := GetLogger()

	if err := ValidateStudyFile(harFile); err != nil {
		return fmt.Errorf("invalid HAR file: %w", err)
	}

	records, err := timing.ImportHAR(harFile, importBrowser)
	if err != nil {
		return err
	}

	if err := timing.AppendToCSV(importOutput, records); err != nil {
		return err
	}

	logger.Info("HAR pages imported",
		"har_file", harFile,
		"pages", len(records),
		"browser", timing.CanonicalBrowser(importBrowser),
		"output", importOutput)

	return nil
}
