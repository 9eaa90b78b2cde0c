package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/onkeltom/page-load-comparison-analysis/timing"
)

func (m *StudyViewModel) render() string {
	var builder strings.Builder

	builder.WriteString(m.renderTitle())
	builder.WriteString("\n")
	builder.WriteString(m.table.View())
	builder.WriteString("\n")
	builder.WriteString(m.renderStatusBar())

	return builder.String()
}

func (m *StudyViewModel) renderTitle() string {
	titleStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		Padding(0, 1).
		Width(m.width).BorderForeground(RGBBlue).BorderTop(false).BorderLeft(false).BorderRight(false).BorderBottom(true)

	titleTextStyle := lipgloss.NewStyle().
		Bold(true)

	titleText := titleTextStyle.Render(fmt.Sprintf("Page Load Study: %s | ", m.fileName))

	countStyle := lipgloss.NewStyle().
		Faint(true)
	rowCount := countStyle.Render(fmt.Sprintf("(%d page loads, %d browsers, %d events)",
		m.rowCount, len(m.stats.Browsers), len(m.stats.Events)))

	return titleStyle.Render(titleText + rowCount)
}

func (m *StudyViewModel) renderStatusBar() string {
	parts := []string{
		"↑/↓: Navigate",
		"q: Quit",
	}

	// bounce summary for the slowest configuration keeps the headline
	// number visible without opening the report
	if browser, split, ok := m.slowestBrowser(); ok {
		label := fmt.Sprintf("%s: %d loads %s", browser, split.Over, timing.LoadOverThreshold)
		if split.Over > 0 {
			parts = append(parts, StyleOverThreshold.Render(label))
		} else {
			parts = append(parts, StyleWithinThreshold.Render(label))
		}
	}

	return HelpStyle.Render(strings.Join(parts, " | "))
}

func (m *StudyViewModel) slowestBrowser() (string, timing.BounceSplit, bool) {
	var (
		worst      string
		worstSplit timing.BounceSplit
		found      bool
	)

	for _, browser := range m.stats.Browsers {
		split, ok := m.stats.Bounce[browser]
		if !ok {
			continue
		}
		if !found || split.Over > worstSplit.Over {
			worst = browser
			worstSplit = split
			found = true
		}
	}

	return worst, worstSplit, found
}
