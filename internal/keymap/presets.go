package keymap

import "github.com/daptify14/tilenav/internal/grid"

// Key names follow bubbletea v2: KeyPressMsg.String() for most keys, and
// "kp1".."kp9" for keypad keys (see KeyName).

// Standard follows the WAI-ARIA data grid keyboard conventions.
var Standard = Map{
	"left":      grid.Prev,
	"right":     grid.Next,
	"up":        grid.Up,
	"down":      grid.Down,
	"pgdown":    grid.PageDown,
	"pgup":      grid.PageUp,
	"home":      grid.StartOfLine,
	"end":       grid.EndOfLine,
	"ctrl+home": grid.First,
	"ctrl+end":  grid.Last,
}

// Numpad binds keypad keys by position, so it works with num lock on or off.
var Numpad = Map{
	"kp1":      grid.EndOfLine,
	"kp2":      grid.Down,
	"kp3":      grid.PageDown,
	"kp4":      grid.Left,
	"kp6":      grid.Right,
	"kp7":      grid.StartOfLine,
	"kp8":      grid.Up,
	"kp9":      grid.PageUp,
	"ctrl+kp7": grid.First,
	"ctrl+kp1": grid.Last,
}

// Vi uses hjkl movement and vi line/file motions.
var Vi = Map{
	"h":      grid.Left,
	"j":      grid.Down,
	"k":      grid.Up,
	"l":      grid.Right,
	"0":      grid.StartOfLine,
	"^":      grid.StartOfLine,
	"$":      grid.EndOfLine,
	"g":      grid.First,
	"<":      grid.First,
	"H":      grid.First,
	"G":      grid.Last,
	"L":      grid.Last,
	"ctrl+b": grid.PageUp,
	"ctrl+f": grid.PageDown,
}

// Emacs uses the readline cursor keys.
var Emacs = Map{
	"ctrl+a": grid.StartOfLine,
	"ctrl+b": grid.Prev,
	"ctrl+e": grid.EndOfLine,
	"ctrl+f": grid.Next,
	"ctrl+n": grid.Down,
	"ctrl+p": grid.Up,
}

// Consolidated is every preset at once. Vi's paging wins over Emacs'
// ctrl+b/ctrl+f.
var Consolidated = Merge(Emacs, Vi, Numpad, Standard)
