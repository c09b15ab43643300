package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tudu/internal/model"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		return m, tickCmd()
	case tea.KeyMsg:
		if m.focus != focusNone {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

// updateBrowsing dispatches keys in navigation mode. Unbound keys are
// no-ops.
func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info("quit")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Home):
		m.tab = tabHome
	case key.Matches(msg, m.keys.Todos):
		m.tab = tabTodos
	case key.Matches(msg, m.keys.Add):
		m.tab = tabAdd
	case key.Matches(msg, m.keys.Delete):
		return m.removeSelected()
	case key.Matches(msg, m.keys.Down):
		m.cursor = m.movedCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.cursor = m.movedCursor(-1)
	case key.Matches(msg, m.keys.NextField):
		m.focus = nextFocus(m.focus)
	}
	return m, nil
}

// movedCursor applies one up/down step against the list length read
// fresh from the store, wrapping at both ends. With no selection a
// non-empty list selects its first item; an empty list clears the
// selection.
func (m Model) movedCursor(delta int) int {
	todos, err := m.store.Load()
	if err != nil {
		m.logger.Warn("load todos for navigation", "err", err)
		return -1
	}
	n := len(todos)
	if n == 0 {
		return -1
	}
	if m.cursor < 0 {
		return 0
	}
	return ((m.cursor+delta)%n + n) % n
}

// removeSelected deletes the item under the cursor and steps the
// cursor back one, clearing it when the first item was removed.
func (m Model) removeSelected() (tea.Model, tea.Cmd) {
	if m.cursor < 0 {
		return m, nil
	}
	if err := m.store.RemoveAt(m.cursor); err != nil {
		return m.fatal("remove todo", err)
	}
	m.logger.Debug("removed todo", "index", m.cursor)
	m.cursor--
	return m, nil
}

// updateEditing dispatches keys while a field has focus: named keys
// first, then raw rune editing on the focused buffer.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusNone // buffers keep their contents
		return m, nil
	case "tab":
		m.focus = nextFocus(m.focus)
		return m, nil
	case "enter":
		if m.tab != tabAdd {
			return m, nil
		}
		return m.submit()
	}

	buf := m.focusedBuffer()
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		*buf = trimLastRune(*buf)
	case tea.KeySpace:
		*buf += " "
	case tea.KeyRunes:
		*buf += string(msg.Runes)
	}
	return m, nil
}

// submit builds a todo from the three buffers and appends it to the
// store. Empty fields are allowed.
func (m Model) submit() (tea.Model, tea.Cmd) {
	todos, err := m.store.Append(model.New(m.name, m.category, m.text))
	if err != nil {
		return m.fatal("append todo", err)
	}
	m.logger.Debug("added todo", "name", m.name, "total", len(todos))
	m.name, m.category, m.text = "", "", ""
	m.focus = focusNone
	if m.cursor < 0 && len(todos) > 0 {
		m.cursor = 0
	}
	return m, nil
}

func (m *Model) focusedBuffer() *string {
	switch m.focus {
	case focusCategory:
		return &m.category
	case focusText:
		return &m.text
	default:
		return &m.name
	}
}

// fatal records a store mutation failure and ends the loop; the error
// is reported after the terminal is restored.
func (m Model) fatal(op string, err error) (tea.Model, tea.Cmd) {
	m.err = fmt.Errorf("%s: %w", op, err)
	m.logger.Error(op, "err", err)
	return m, tea.Quit
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
