package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onkeltom/page-load-comparison-analysis/timing"
)

func testStats() *timing.StudyStats {
	return timing.Aggregate(&timing.Table{
		Columns: []string{"fetchStart", "loadEventEnd"},
		Records: []timing.DerivedRecord{
			{Browser: "Chrome", Offsets: map[string]float64{"fetchStart": 5, "loadEventEnd": 2000}},
			{Browser: "Chrome", Offsets: map[string]float64{"fetchStart": 15, "loadEventEnd": 8000}},
			{Browser: "Firefox Quantum", Offsets: map[string]float64{"loadEventEnd": 3000}},
		},
	})
}

func TestBuildTable(t *testing.T) {
	m := NewStudyViewModel("study.csv", 3, testStats())
	m.width = 120
	m.buildTable()

	// one column for the event name, one per browser
	require.Len(t, m.columns, 3)
	assert.Equal(t, "Event", m.columns[0].Title)
	assert.Equal(t, "Chrome", m.columns[1].Title)
	assert.Equal(t, "Firefox Quantum", m.columns[2].Title)

	// one row per surviving event, chronological
	require.Len(t, m.rows, 2)
	assert.Equal(t, "fetchStart", m.rows[0][0])
	assert.Equal(t, "10.0 ms", m.rows[0][1])
	assert.Equal(t, "-", m.rows[0][2], "missing pair renders as a dash")
	assert.Equal(t, "loadEventEnd", m.rows[1][0])
	assert.Equal(t, "5000.0 ms", m.rows[1][1])
	assert.Equal(t, "3000.0 ms", m.rows[1][2])
}

func TestSlowestBrowser(t *testing.T) {
	m := NewStudyViewModel("study.csv", 3, testStats())

	browser, split, ok := m.slowestBrowser()
	require.True(t, ok)
	assert.Equal(t, "Chrome", browser)
	assert.Equal(t, 1, split.Over)
}

func TestViewBeforeFirstWindowSize(t *testing.T) {
	m := NewStudyViewModel("study.csv", 3, testStats())
	assert.Equal(t, "Initializing...", m.View())
}
