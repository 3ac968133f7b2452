package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the search screen bindings.
type KeyMap struct {
	Search       key.Binding
	FocusInput   key.Binding
	FocusList    key.Binding
	PrevPage     key.Binding
	NextPage     key.Binding
	PageSizeUp   key.Binding
	PageSizeDown key.Binding
	Up           key.Binding
	Down         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		FocusInput: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "edit query"),
		),
		FocusList: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "browse results"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		PageSizeUp: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "page size"),
		),
		PageSizeDown: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.PageSizeUp, k.PrevPage, k.NextPage, k.FocusInput, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.FocusInput, k.FocusList},
		{k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.PageSizeUp, k.Quit},
	}
}
