package tui

import "charm.land/bubbles/v2/key"

// ── App Bindings (checked after the grid key map) ─────────────────

type AppKeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Filter    key.Binding
	Refresh   key.Binding
	KeyMaps   key.Binding
	Clear     key.Binding
}

var AppKeys = AppKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "Quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Keys"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "Filter"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Rescan"),
	),
	KeyMaps: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "Key map"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Clear filter"),
	),
}

// ── Filter Input Bindings ──────────────────────────────────────────

type FilterKeyMap struct {
	Accept key.Binding
	Cancel key.Binding
}

var FilterKeys = FilterKeyMap{
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Keep filter"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Cancel"),
	),
}

func (k AppKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.KeyMaps, k.Refresh, k.Help, k.Quit}
}

func (k AppKeyMap) FullHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Clear, k.KeyMaps, k.Refresh, k.Help, k.Quit, k.ForceQuit}
}
