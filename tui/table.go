package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/v2/table"

	"github.com/onkeltom/page-load-comparison-analysis/timing"
)

func (m *StudyViewModel) buildTable() {
	browserWidth := minBrowserWidth
	if len(m.stats.Browsers) > 0 {
		available := (m.width - eventColumnWidth - 4) / len(m.stats.Browsers)
		if available > browserWidth {
			browserWidth = available
		}
		if browserWidth > maxBrowserWidth {
			browserWidth = maxBrowserWidth
		}
	}

	columns := []table.Column{
		{Title: "Event", Width: eventColumnWidth},
	}
	for _, browser := range m.stats.Browsers {
		columns = append(columns, table.Column{Title: browser, Width: browserWidth})
	}

	rows := make([]table.Row, 0, len(m.stats.Events))
	for _, event := range m.stats.Events {
		row := table.Row{event}
		for _, browser := range m.stats.Browsers {
			row = append(row, formatMean(m.stats, browser, event))
		}
		rows = append(rows, row)
	}

	m.columns = columns
	m.rows = rows
}

func formatMean(stats *timing.StudyStats, browser, event string) string {
	mean, ok := stats.MeanOffset(browser, event)
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.1f ms", mean)
}
