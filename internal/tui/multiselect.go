// Package tui renders the interactive and styled parts of the author CLI.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user aborts a prompt without confirming.
var ErrCancelled = errors.New("selection cancelled")

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Toggle, km.Confirm, km.Cancel}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Up, km.Down}, {km.Toggle, km.Confirm, km.Cancel}}
}

// keyMap implements help.KeyMap
var _ help.KeyMap = keyMap{}

var defaultKeyMap = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "toggle"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c", "q"),
		key.WithHelp("esc", "cancel"),
	),
}

type multiSelectModel struct {
	title     string
	options   []string
	cursor    int
	selected  map[int]struct{}
	keys      keyMap
	help      help.Model
	confirmed bool
	cancelled bool
}

func newMultiSelectModel(title string, options []string) multiSelectModel {
	return multiSelectModel{
		title:    title,
		options:  options,
		selected: make(map[int]struct{}),
		keys:     defaultKeyMap,
		help:     help.New(),
	}
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if _, ok := m.selected[m.cursor]; ok {
				delete(m.selected, m.cursor)
			} else {
				m.selected[m.cursor] = struct{}{}
			}
		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m multiSelectModel) View() string {
	if m.confirmed || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n\n")
	for i, option := range m.options {
		checked := " "
		if _, ok := m.selected[i]; ok {
			checked = "x"
		}
		line := fmt.Sprintf("[%s] %s", checked, option)
		if i == m.cursor {
			b.WriteString(cursorItemStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(itemStyle.Render(line) + "\n")
		}
	}
	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

// selection returns the toggled options in their original order.
func (m multiSelectModel) selection() []string {
	picked := make([]string, 0, len(m.selected))
	for i, option := range m.options {
		if _, ok := m.selected[i]; ok {
			picked = append(picked, option)
		}
	}
	return picked
}

// MultiSelect prompts the user to pick any subset of options and returns the
// confirmed picks. Aborting the prompt returns ErrCancelled.
func MultiSelect(title string, options []string) ([]string, error) {
	program := tea.NewProgram(newMultiSelectModel(title, options))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}

	m := final.(multiSelectModel)
	if m.cancelled {
		return nil, ErrCancelled
	}
	return m.selection(), nil
}
