// Package tui implements the interactive todo screen: a Bubble Tea
// program dispatching keys through a navigation/editing focus machine
// over a JSON-file store.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tudu/internal/model"
)

// Store is the persistence surface the screen drives.
type Store interface {
	Load() ([]model.Todo, error)
	Append(item model.Todo) ([]model.Todo, error)
	RemoveAt(index int) error
}

// tab selects which of the three screens is displayed.
type tab int

const (
	tabHome tab = iota
	tabTodos
	tabAdd
)

// menuTitles lists the menu bar entries in display order. Delete and
// Quit are actions, not screens, and never highlight as active.
var menuTitles = []string{"Home", "TODOs", "Add", "Delete", "Quit"}

// displayIndex maps each tab to its slot in the menu bar.
var displayIndex = map[tab]int{
	tabHome:  0,
	tabTodos: 1,
	tabAdd:   2,
}

// focus names the input field receiving keystrokes; focusNone means
// keys dispatch as navigation.
type focus int

const (
	focusNone focus = iota
	focusName
	focusCategory
	focusText
)

// nextFocus advances the focus ring: None→Name→Category→Text→None.
func nextFocus(f focus) focus {
	switch f {
	case focusNone:
		return focusName
	case focusName:
		return focusCategory
	case focusCategory:
		return focusText
	default:
		return focusNone
	}
}

const tickInterval = 200 * time.Millisecond

// tickMsg drives the periodic redraw. The frame is re-derived on every
// message anyway, so its handler only re-arms the next tick.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the whole application state: active screen, focus machine,
// the three input buffers, and the selection cursor. The todo list
// itself lives in the store and is re-read every frame.
type Model struct {
	store  Store
	logger *log.Logger
	keys   keyMap

	tab    tab
	focus  focus
	cursor int // index into the stored list; -1 = no selection

	name     string
	category string
	text     string

	width  int
	height int

	err error // fatal store error carried out of the loop
}

func NewModel(st Store, logger *log.Logger) Model {
	return Model{
		store:  st,
		logger: logger,
		keys:   defaultKeyMap(),
		cursor: -1,
	}
}

// Err returns the fatal error that ended the loop, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return tickCmd() }

// Run drives the screen until quit or ctx cancellation. A store
// mutation failure ends the loop and comes back as the returned error
// once the terminal is restored.
func Run(ctx context.Context, st Store, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(st, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // captured but unused
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
