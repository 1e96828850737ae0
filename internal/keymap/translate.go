package keymap

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/tilenav/internal/grid"
)

// keypadKeys names keypad keys by position. With num lock on bubbletea
// reports digits; with it off, kitty-protocol terminals report the printed
// arrows, which would otherwise stringify as "home", "up" and so on.
var keypadKeys = map[rune]string{
	tea.KeyKp0: "kp0",
	tea.KeyKp1: "kp1",
	tea.KeyKp2: "kp2",
	tea.KeyKp3: "kp3",
	tea.KeyKp4: "kp4",
	tea.KeyKp5: "kp5",
	tea.KeyKp6: "kp6",
	tea.KeyKp7: "kp7",
	tea.KeyKp8: "kp8",
	tea.KeyKp9: "kp9",

	tea.KeyKpEnd:    "kp1",
	tea.KeyKpDown:   "kp2",
	tea.KeyKpPgDown: "kp3",
	tea.KeyKpLeft:   "kp4",
	tea.KeyKpBegin:  "kp5",
	tea.KeyKpRight:  "kp6",
	tea.KeyKpHome:   "kp7",
	tea.KeyKpUp:     "kp8",
	tea.KeyKpPgUp:   "kp9",
}

// KeyName returns the canonical name used to look up ev in a Map. Keypad
// keys become "kpN" whatever the num lock state, with any ctrl/alt/shift prefix; every other key uses
// its bubbletea string form ("G", "$", "ctrl+home", "pgdown").
func KeyName(ev grid.KeyEvent) string {
	msg, ok := ev.(tea.KeyPressMsg)
	if !ok {
		return ev.String()
	}
	name, ok := keypadKeys[msg.Code]
	if !ok {
		return msg.String()
	}

	var b strings.Builder
	if msg.Mod.Contains(tea.ModCtrl) {
		b.WriteString("ctrl+")
	}
	if msg.Mod.Contains(tea.ModAlt) {
		b.WriteString("alt+")
	}
	if msg.Mod.Contains(tea.ModShift) {
		b.WriteString("shift+")
	}
	b.WriteString(name)
	return b.String()
}
