package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"tudu/internal/model"
)

// View re-derives the whole frame from current state: menu bar, one of
// the three screens, and the footer. The todo list is re-read from the
// store on every frame, so edits land on screen without bookkeeping.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	var screen string
	switch m.tab {
	case tabTodos:
		screen = m.viewTodos()
	case tabAdd:
		screen = m.viewAdd()
	default:
		screen = m.viewHome()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewMenu(),
		screen,
		m.viewFooter(),
	)
}

func (m Model) viewMenu() string {
	active := displayIndex[m.tab]
	entries := make([]string, 0, len(menuTitles))
	for i, title := range menuTitles {
		style := inactiveStyle
		if i == active {
			style = activeStyle
		}
		entries = append(entries, shortcutStyle.Render(title[:1])+style.Render(title[1:]))
	}
	bar := strings.Join(entries, inactiveStyle.Render(" | "))
	return panelStyle.Width(m.width - 2).Render(bar)
}

func (m Model) viewFooter() string {
	return footerStyle.Width(m.width).Align(lipgloss.Center).
		Render("tudu 2026 --- all rights reserved")
}

// viewHome shows the welcome text and the navigation key help.
func (m Model) viewHome() string {
	lines := []string{
		titleStyle.Render("Welcome to tudu!"),
		"",
	}
	for _, b := range []key.Binding{m.keys.Todos, m.keys.Add, m.keys.Delete, m.keys.Quit} {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%s  %s",
			shortcutStyle.Render(h.Key), activeStyle.Render(h.Desc)))
	}
	return lipgloss.Place(m.width, m.contentHeight(),
		lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}

// viewTodos splits the screen into the name list (left fifth) and the
// detail table for the selected item. With no selection the detail row
// shows a zero-value todo.
func (m Model) viewTodos() string {
	todos, err := m.store.Load()
	if err != nil {
		m.logger.Warn("load todos for display", "err", err)
		todos = nil
	}

	names := make([]string, 0, len(todos))
	for i, td := range todos {
		if i == m.cursor {
			names = append(names, selectedStyle.Render("> "+td.Name))
		} else {
			names = append(names, activeStyle.Render("  "+td.Name))
		}
	}
	if len(names) == 0 {
		names = append(names, inactiveStyle.Render("  no todos yet"))
	}

	var sel model.Todo
	if m.cursor >= 0 && m.cursor < len(todos) {
		sel = todos[m.cursor]
	}

	height := m.contentHeight() - 2
	if height < 1 {
		height = 1
	}
	listWidth := m.width / 5
	detailWidth := m.width - listWidth - 4

	list := panelStyle.Width(listWidth).Height(height).
		Render(strings.Join(names, "\n"))
	detail := panelStyle.Width(detailWidth).Height(height).
		Render(m.viewDetail(sel, detailWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
}

// viewDetail renders the two-row detail table: column headers and the
// selected item's fields.
func (m Model) viewDetail(sel model.Todo, width int) string {
	cols := []struct {
		title string
		value string
		width int
	}{
		{"ID", strconv.Itoa(sel.ID), width * 5 / 100},
		{"Name", sel.Name, width * 20 / 100},
		{"Category", sel.Category, width * 20 / 100},
		{"Text", sel.Text, width * 30 / 100},
		{"Created At", formatWhen(sel.CreatedAt), width * 25 / 100},
	}
	var header, row strings.Builder
	for _, c := range cols {
		w := c.width
		if w < 4 {
			w = 4
		}
		header.WriteString(headerStyle.Width(w).Render(truncate(c.title, w-1)))
		row.WriteString(activeStyle.Width(w).Render(truncate(c.value, w-1)))
	}
	return header.String() + "\n" + row.String()
}

// viewAdd shows the three input fields; the focused one gets the
// double border.
func (m Model) viewAdd() string {
	fields := []struct {
		label string
		value string
		f     focus
	}{
		{"Name for a TODO: ", m.name, focusName},
		{"Category for a TODO: ", m.category, focusCategory},
		{"Text for a TODO: ", m.text, focusText},
	}
	w := m.width - 4
	lines := []string{
		inactiveStyle.Render("Use <tab> to switch between fields, <enter> to submit"),
	}
	for _, fl := range fields {
		style, label := fieldStyle, fl.label
		if m.focus == fl.f {
			style = focusedFieldStyle
			label = focusStyle.Render(label)
		}
		lines = append(lines, style.Width(w).Render(label+fl.value))
	}
	return lipgloss.NewStyle().Height(m.contentHeight()).
		Render(strings.Join(lines, "\n"))
}

// contentHeight is the rows left between the menu box and the footer.
func (m Model) contentHeight() int {
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

func formatWhen(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func truncate(s string, max int) string {
	if max < 1 || len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
