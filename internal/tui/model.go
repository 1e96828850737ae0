package tui

import (
	"log/slog"
	"maps"
	"path/filepath"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/daptify14/tilenav/internal/grid"
	"github.com/daptify14/tilenav/internal/keymap"
)

const (
	appName          = "tilenav"
	defaultTileWidth = 22
	defaultMaxItems  = 2000
)

// Model is the tile browser. It is copied by value on every Update; the
// tile set, navigator and resize notifier are shared pointers.
type Model struct {
	opts Options
	root string

	tiles  *tileSet
	nav    *grid.Navigator[*tile]
	resize *grid.ResizeNotifier

	keyMapName string
	tileWidth  int
	iconMode   IconMode

	filterInput textinput.Model
	help        help.Model
	spinner     spinner.Model

	// picker is non-nil while the key-map picker form is open.
	picker *huh.Form

	preview previewState

	gen       uint64 // bumped per scan; stale scan results are dropped
	loading   bool
	scanErr   error
	truncated bool
	message   string

	width  int
	height int

	debugLog *slog.Logger
}

// NewModel creates a tile browser over opts.Root.
func NewModel(opts Options) Model {
	root := opts.Root
	if root == "" {
		root = "."
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	// The navigator owns its map; presets stay untouched.
	km := maps.Clone(opts.KeyMap)
	kmName := opts.KeyMapName
	if km == nil {
		km = maps.Clone(keymap.Consolidated)
		kmName = keymap.PresetAll
	}

	tileWidth := opts.TileWidth
	if tileWidth <= 0 {
		tileWidth = defaultTileWidth
	}
	iconMode := opts.IconMode
	if iconMode == "" {
		iconMode = IconModeNerdFont
	}

	tiles := &tileSet{}
	resize := grid.NewResizeNotifier()

	cfg := grid.NavigatorConfig[*tile]{
		Items:    tiles.items,
		OnSelect: selectTile,
		KeyMap:   km,
		KeyName:  keymap.KeyName,
		Offset:   tileOffset,
		Resize:   resize,
		Logger:   opts.DebugLog,
	}
	if opts.Columns > 0 {
		cfg.Columns = grid.FixedColumns[*tile](opts.Columns)
	}
	nav, err := grid.NewNavigator(cfg)
	if err != nil {
		panic("NewModel: " + err.Error())
	}

	h := help.New()
	h.ShortSeparator = "  "

	return Model{
		opts:        opts,
		root:        root,
		tiles:       tiles,
		nav:         nav,
		resize:      resize,
		keyMapName:  kmName,
		tileWidth:   tileWidth,
		iconMode:    iconMode,
		filterInput: newFilterInput(),
		help:        h,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		loading:     true,
		debugLog:    opts.DebugLog,
	}
}

// selectTile is the navigator's selection callback.
func selectTile(t *tile, selectNow bool) {
	if t != nil {
		t.selected = selectNow
	}
}

// Init implements tea.Model by starting the first scan.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.RequestBackgroundColor, m.scan())
}

func (m Model) scan() tea.Cmd {
	maxItems := m.opts.MaxItems
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}
	return scanCmd(m.root, scanOptions{
		maxDepth:   m.opts.MaxDepth,
		maxItems:   maxItems,
		showHidden: m.opts.ShowHidden,
	}, m.gen)
}

// rescan discards in-flight scan results and starts a new scan.
func (m Model) rescan() (Model, tea.Cmd) {
	m.gen++
	m.loading = true
	m.message = ""
	return m, tea.Batch(m.spinner.Tick, m.scan())
}

// setTiles installs a fresh scan. The navigator reloads lazily and keeps the
// selected tile when a tile with the same path survives the rescan.
func (m Model) setTiles(tiles []*tile) {
	var keep string
	if cur := m.currentTile(); cur != nil {
		keep = cur.path
	}
	m.tiles.all = tiles
	m.tiles.visible = filterTiles(m.filterInput.Value(), tiles)
	m.relayout()
	m.nav.MarkStale()

	if keep != "" {
		for _, t := range m.tiles.visible {
			if t.path == keep {
				if _, err := m.nav.Select(t); err != nil && m.debugLog != nil {
					m.debugLog.Warn("reselect after reload failed", "path", keep, "err", err)
				}
				break
			}
		}
	}
	m.reannounce()
}

// reannounce clears every selected flag and replays the current selection
// through the navigator callback, so exactly the current tile is flagged.
func (m Model) reannounce() {
	m.tiles.clearSelection()
	if len(m.nav.Items()) == 0 {
		return
	}
	// Current is always a member of the items just loaded.
	_, _ = m.nav.Select(m.nav.Current())
}

// currentTile returns the selected tile or nil for an empty grid.
func (m Model) currentTile() *tile {
	if len(m.nav.Items()) == 0 {
		return nil
	}
	return m.nav.Current()
}

// Columns reports the column count the navigator is using.
func (m Model) Columns() int {
	return m.nav.Shape().RowLength
}

// Close releases the navigator's resize subscription.
func (m Model) Close() {
	m.nav.Close()
}
