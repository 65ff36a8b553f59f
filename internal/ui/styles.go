package ui

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	itemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().PaddingLeft(0).Foreground(lipgloss.Color("170"))
	quitTextStyle = lipgloss.NewStyle().Margin(1, 0, 2, 4)
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	textStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	// HeaderStyle renders table headers in command output.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	// DimStyle renders secondary values.
	DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
