package tui

import (
	"path"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/daptify14/tilenav/internal/keymap"
)

const testRoot = "/tmp/tilenav-test"

// ── Model Builder ───────────────────────────────────────────────────

// testModelConfig is filled by options first; newTestModel reads it once.
type testModelConfig struct {
	width      int
	height     int
	tileWidth  int
	columns    int
	names      []string
	keyMap     keymap.Map
	keyMapName string
}

type TestModelOption func(*testModelConfig)

func WithSize(w, h int) TestModelOption {
	return func(c *testModelConfig) { c.width = w; c.height = h }
}

// WithTiles sets the scanned entries. A trailing "/" marks a directory.
func WithTiles(names ...string) TestModelOption {
	return func(c *testModelConfig) { c.names = names }
}

func WithColumns(n int) TestModelOption {
	return func(c *testModelConfig) { c.columns = n }
}

func WithKeyMap(name string, km keymap.Map) TestModelOption {
	return func(c *testModelConfig) { c.keyMapName = name; c.keyMap = km }
}

var eightTiles = []string{"a", "b", "c", "d", "e", "f", "g", "h"}

// newTestModel builds a loaded Model. Defaults: 36x20, 12-cell tiles (three
// columns, no preview panel), eight tiles "a".."h", no icons, all key maps.
func newTestModel(opts ...TestModelOption) Model {
	cfg := &testModelConfig{
		width:     36,
		height:    20,
		tileWidth: 12,
		names:     eightTiles,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	m := NewModel(Options{
		Root:       testRoot,
		KeyMap:     cfg.keyMap,
		KeyMapName: cfg.keyMapName,
		Columns:    cfg.columns,
		TileWidth:  cfg.tileWidth,
		IconMode:   IconModeNone,
	})
	m.width = cfg.width
	m.height = cfg.height
	m.loading = false
	m.setTiles(testTiles(cfg.names...))
	return m
}

func testTiles(names ...string) []*tile {
	tiles := make([]*tile, 0, len(names))
	for _, name := range names {
		rel := strings.TrimSuffix(name, "/")
		tiles = append(tiles, &tile{
			name: path.Base(rel),
			path: testRoot + "/" + rel,
			rel:  rel,
			dir:  strings.HasSuffix(name, "/"),
		})
	}
	return tiles
}

// ── Key Factories ───────────────────────────────────────────────────

// runeKey creates a tea.KeyPressMsg for a rune string (e.g., "j", "?", "G").
func runeKey(r string) tea.KeyPressMsg {
	runes := []rune(r)
	return tea.KeyPressMsg{Code: runes[0], Text: r}
}

// specialKey creates a tea.KeyPressMsg for a special key code (e.g., tea.KeyEsc).
func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: tea.ModCtrl}
}

// typeText sends one key press per rune.
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = sendKey(t, m, runeKey(string(r)))
	}
	return m
}

// ── Dispatch Helpers ────────────────────────────────────────────────

func sendKey(t *testing.T, m Model, key tea.KeyPressMsg) (Model, tea.Cmd) {
	t.Helper()
	return sendMsg(t, m, key)
}

func sendMsg(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	result, cmd := m.Update(msg)
	updated, ok := result.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want tui.Model", result)
	}
	return updated, cmd
}

// ── Assertion Helpers ───────────────────────────────────────────────

func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// assertSelected checks the navigator's current tile and that it is the only
// tile flagged selected.
func assertSelected(t *testing.T, m Model, rel string) {
	t.Helper()
	cur := m.currentTile()
	if cur == nil {
		t.Fatalf("no current tile, want %q", rel)
	}
	if cur.rel != rel {
		t.Fatalf("current tile = %q, want %q", cur.rel, rel)
	}
	for _, tl := range m.tiles.all {
		if tl.selected != (tl == cur) {
			t.Fatalf("tile %q selected=%t, want %t", tl.rel, tl.selected, tl == cur)
		}
	}
}

func visibleRels(m Model) []string {
	out := make([]string, 0, len(m.tiles.visible))
	for _, tl := range m.tiles.visible {
		out = append(out, tl.rel)
	}
	return out
}

// ── Golden Test Helpers ─────────────────────────────────────────────

// stripForGolden removes ANSI codes and trailing whitespace so padding
// changes do not break golden files.
func stripForGolden(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
