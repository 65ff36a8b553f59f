package ui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type pickerModel struct {
	title    string
	options  []string
	cursor   int
	chosen   bool
	quitting bool
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.chosen = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.chosen {
		return ""
	}
	if m.quitting {
		return quitTextStyle.Render("Cancelled.")
	}

	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render(m.title) + "\n\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+opt) + "\n")
			continue
		}
		b.WriteString(itemStyle.Render(opt) + "\n")
	}
	b.WriteString("\n" + textStyle.Render("↑/↓ to move, enter to select, esc to quit") + "\n")
	return b.String()
}

// SelectProfile shows an interactive list on stderr and returns the chosen
// option.
func SelectProfile(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no profiles to choose from")
	}

	p := tea.NewProgram(pickerModel{title: title, options: options}, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(pickerModel)
	if !ok || !m.chosen {
		return "", ErrCancelled
	}
	return m.options[m.cursor], nil
}
