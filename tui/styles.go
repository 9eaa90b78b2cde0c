package tui

import (
	"github.com/charmbracelet/bubbles/v2/table"
	"github.com/charmbracelet/lipgloss/v2"
)

// Color constants matching vacuum EXACTLY
var (
	RGBBlue       = lipgloss.Color("45")
	RGBPink       = lipgloss.Color("201")
	RGBYellow     = lipgloss.Color("220")
	RGBGreen      = lipgloss.Color("46")
	RGBGrey       = lipgloss.Color("246")
	RGBRed        = lipgloss.Color("196")
	RGBSubtlePink = lipgloss.Color("#2a1a2a")
)

var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(RGBPink)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(RGBGrey)

	HelpStyle = lipgloss.NewStyle().
		Foreground(RGBGrey)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(RGBRed).
		Bold(true)

	// slow loads get flagged in the bounce column
	StyleOverThreshold   = lipgloss.NewStyle().Foreground(RGBYellow)
	StyleWithinThreshold = lipgloss.NewStyle().Foreground(RGBGreen)
)

// ApplyTableStyles applies the Vacuum table theme to match exactly
func ApplyTableStyles(t table.Model) table.Model {
	s := table.DefaultStyles()

	s.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(RGBPink).
		BorderBottom(true).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		Foreground(RGBPink).
		Bold(true).
		Padding(0, 1)

	s.Selected = lipgloss.NewStyle().
		Bold(true).
		Foreground(RGBPink).
		Background(RGBSubtlePink).
		Padding(0, 0)

	s.Cell = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(RGBPink).
		BorderRight(false).
		Padding(0, 1)

	t.SetStyles(s)
	return t
}
