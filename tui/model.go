// Package tui is the interactive terminal view of a normalized study:
// one table row per timing event, one column per browser
// configuration, showing mean offsets from navigation start.
package tui

import (
	"github.com/charmbracelet/bubbles/v2/table"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/onkeltom/page-load-comparison-analysis/timing"
)

const (
	tableVerticalPadding = 4
	eventColumnWidth     = 28
	minBrowserWidth      = 12
	maxBrowserWidth      = 34
)

type StudyViewModel struct {
	table   table.Model
	rows    []table.Row
	columns []table.Column

	stats    *timing.StudyStats
	fileName string
	rowCount int

	width    int
	height   int
	ready    bool
	quitting bool
}

func NewStudyViewModel(fileName string, rowCount int, stats *timing.StudyStats) *StudyViewModel {
	return &StudyViewModel{
		stats:    stats,
		fileName: fileName,
		rowCount: rowCount,
	}
}

func (m *StudyViewModel) Init() tea.Cmd {
	return nil
}

func (m *StudyViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.initializeTable()
		m.ready = true

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *StudyViewModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	return m.render()
}

func (m *StudyViewModel) initializeTable() {
	m.buildTable()

	tableHeight := m.height - tableVerticalPadding
	if tableHeight < 3 {
		tableHeight = 3
	}

	m.table = table.New(
		table.WithColumns(m.columns),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
		table.WithWidth(m.width),
	)

	m.table = ApplyTableStyles(m.table)
}
