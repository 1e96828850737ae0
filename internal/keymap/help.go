package keymap

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/daptify14/tilenav/internal/grid"
)

var commandHelp = map[grid.Command]string{
	grid.Prev:        "Previous",
	grid.Next:        "Next",
	grid.Up:          "Row up",
	grid.Down:        "Row down",
	grid.Left:        "Left in row",
	grid.Right:       "Right in row",
	grid.First:       "First",
	grid.Last:        "Last",
	grid.StartOfLine: "Row start",
	grid.EndOfLine:   "Row end",
	grid.PageUp:      "Page up",
	grid.PageDown:    "Page down",
}

// Describe returns a short human label for cmd.
func Describe(cmd grid.Command) string {
	if s, ok := commandHelp[cmd]; ok {
		return s
	}
	return string(cmd)
}

// Bindings returns one help binding per bound command, in command order.
func Bindings(m Map) []key.Binding {
	var out []key.Binding
	for _, cmd := range grid.Commands() {
		keys := m.KeysFor(cmd)
		if len(keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), Describe(cmd)),
		))
	}
	return out
}

// Table renders m as a plain two-column listing of commands and their keys.
func Table(m Map) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s  %s\n", "COMMAND", "KEYS")
	for _, cmd := range grid.Commands() {
		keys := m.KeysFor(cmd)
		if len(keys) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%-12s  %s\n", cmd, strings.Join(keys, ", "))
	}
	return b.String()
}
