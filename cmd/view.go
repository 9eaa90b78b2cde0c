package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/onkeltom/page-load-comparison-analysis/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view <study-csv>",
	Short: "Browse study statistics in the terminal",
	Long: `Launch an interactive terminal user interface showing the normalized
study as a table: one row per timing event, one column per browser
configuration, with mean offsets from navigation start.`,
	Args: cobra.ExactArgs(1),
	Example: `  plstudy view pageloadstudy.csv
  plstudy view pageloadstudy.csv -v`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	studyFile := args[0]
	logger := GetLogger()

	if err := ValidateStudyFile(studyFile); err != nil {
		return err
	}

	logger.Info("launching terminal UI", "study_file", studyFile)

	dataset, stats, err := LoadStudy(studyFile, logger)
	if err != nil {
		return err
	}

	model := tui.NewStudyViewModel(studyFile, len(dataset.Records), stats)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
