package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg[T any] struct {
	value T
	err   error
}

// spinnerModel runs one task and shows a spinner until it reports back.
type spinnerModel[T any] struct {
	spin  spinner.Model
	label string
	task  func() (T, error)

	finished bool
	value    T
	err      error
}

func newSpinnerModel[T any](label string, task func() (T, error)) spinnerModel[T] {
	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle))
	return spinnerModel[T]{spin: s, label: label, task: task}
}

func (m spinnerModel[T]) run() tea.Msg {
	v, err := m.task()
	return doneMsg[T]{value: v, err: err}
}

func (m spinnerModel[T]) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.run)
}

func (m spinnerModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg[T]:
		m.finished = true
		m.value, m.err = msg.value, msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.finished = true
			m.err = ErrCancelled
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel[T]) View() string {
	if m.finished {
		return ""
	}
	return m.spin.View() + " " + textStyle.Render(m.label)
}

// Spin runs task while a spinner is shown on stderr and returns its result.
// Ctrl+C abandons the task with ErrCancelled.
func Spin[T any](label string, task func() (T, error)) (T, error) {
	var zero T

	final, err := tea.NewProgram(newSpinnerModel(label, task), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return zero, err
	}
	m, ok := final.(spinnerModel[T])
	if !ok {
		return zero, fmt.Errorf("unexpected spinner model %T", final)
	}
	if m.err != nil {
		return zero, m.err
	}
	return m.value, nil
}
