package tui

import (
	"log/slog"

	"github.com/daptify14/tilenav/internal/keymap"
)

// Options configures the TUI model.
type Options struct {
	// Root is the directory whose entries become tiles.
	Root string

	// KeyMap maps key names to grid commands. Defaults to keymap.Consolidated.
	KeyMap keymap.Map

	// KeyOverrides are re-applied on top of any preset chosen in the picker.
	KeyOverrides keymap.Map

	// KeyMapName labels the active key map in the status bar.
	KeyMapName string

	// Columns fixes the column count. Zero estimates it from tile offsets.
	Columns int

	// TileWidth is the width of one tile in cells, separator included.
	TileWidth int

	// IconMode controls which icon set tiles are drawn with.
	IconMode IconMode

	ShowHidden bool
	MaxDepth   int
	MaxItems   int

	// DebugLog, when non-nil, receives structured logs of every tea.Msg
	// processed by Update and of navigator rebuilds. Set via TILENAV_DEBUG.
	DebugLog *slog.Logger
}
