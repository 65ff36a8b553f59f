package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func press(m tea.Model, keys ...tea.KeyMsg) tea.Model {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

func TestPickerMovesAndSelects(t *testing.T) {
	m := pickerModel{title: "Profile", options: []string{"default", "dev", "prod"}}

	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	got := press(m, down, down, down, up, enter).(pickerModel)
	assert.True(t, got.chosen)
	assert.Equal(t, "dev", got.options[got.cursor])
	assert.Empty(t, got.View())
}

func TestPickerCursorStaysInRange(t *testing.T) {
	m := pickerModel{options: []string{"a", "b"}}
	got := press(m, tea.KeyMsg{Type: tea.KeyUp}).(pickerModel)
	assert.Equal(t, 0, got.cursor)
}

func TestPickerCancel(t *testing.T) {
	m := pickerModel{options: []string{"a"}}
	got := press(m, tea.KeyMsg{Type: tea.KeyEsc}).(pickerModel)
	assert.True(t, got.quitting)
	assert.False(t, got.chosen)
	assert.Contains(t, got.View(), "Cancelled.")
}

func TestSelectProfileNoOptions(t *testing.T) {
	_, err := SelectProfile("Profile", nil)
	assert.Error(t, err)
}
