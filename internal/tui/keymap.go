package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap collects the navigation-mode bindings. Editing-mode input is
// handled per rune and does not go through bindings.
type keyMap struct {
	Quit      key.Binding
	Home      key.Binding
	Todos     key.Binding
	Add       key.Binding
	Delete    key.Binding
	Up        key.Binding
	Down      key.Binding
	NextField key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "go home"),
		),
		Todos: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "browse your todos"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add a new todo"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete the selected todo"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
	}
}
