package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return p
}

func TestReadPreview(t *testing.T) {
	dir := t.TempDir()

	t.Run("text", func(t *testing.T) {
		p := writeFile(t, dir, "notes.txt", []byte("one\ntwo\n"))
		content, binary, err := readPreview(p)
		if err != nil || binary || content != "one\ntwo\n" {
			t.Fatalf("readPreview = %q, %t, %v", content, binary, err)
		}
	})

	t.Run("binary", func(t *testing.T) {
		p := writeFile(t, dir, "blob.bin", []byte{0x7f, 'E', 'L', 'F', 0, 1})
		_, binary, err := readPreview(p)
		if err != nil || !binary {
			t.Fatalf("expected binary, got %t, %v", binary, err)
		}
	})

	t.Run("large file is capped", func(t *testing.T) {
		p := writeFile(t, dir, "big.txt", []byte(strings.Repeat("x", previewMaxBytes*2)))
		content, _, err := readPreview(p)
		if err != nil || len(content) != previewMaxBytes {
			t.Fatalf("expected %d bytes, got %d, %v", previewMaxBytes, len(content), err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, _, err := readPreview(filepath.Join(dir, "missing")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}

func TestPreviewFollowsSelection(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.go", []byte("package first\n"))
	second := writeFile(t, dir, "second.nolexer", []byte("hello\nworld\n"))

	m := NewModel(Options{Root: dir, TileWidth: 12, IconMode: IconModeNone})
	m.width, m.height = 120, 30
	tiles := []*tile{
		{name: "first.go", path: first, rel: "first.go"},
		{name: "second.nolexer", path: second, rel: "second.nolexer"},
	}

	m, cmd := sendMsg(t, m, tilesScannedMsg{tiles: tiles})
	if cmd == nil || !m.preview.loading || m.preview.path != first {
		t.Fatalf("expected preview load for first.go, got path=%q loading=%t", m.preview.path, m.preview.loading)
	}
	m, _ = sendMsg(t, m, cmd())
	if m.preview.loading || len(m.preview.lines) == 0 {
		t.Fatal("expected preview lines after load")
	}

	m, cmd = sendKey(t, m, specialKey(tea.KeyRight))
	if cmd == nil || m.preview.path != second {
		t.Fatalf("expected preview load for second.nolexer, got %q", m.preview.path)
	}
	m, _ = sendMsg(t, m, cmd())
	if got := strings.Join(m.preview.lines, "|"); got != "hello|world" {
		t.Fatalf("preview lines = %q", got)
	}
}

func TestPreviewIgnoresStaleResult(t *testing.T) {
	m := newTestModel(WithSize(120, 30))
	m.preview = previewState{path: "/current", loading: true}
	m, _ = sendMsg(t, m, previewLoadedMsg{path: "/old", content: "old"})
	if !m.preview.loading || m.preview.lines != nil {
		t.Fatal("stale preview must be dropped")
	}
}

func TestPreviewSkippedWithoutPanel(t *testing.T) {
	m := newTestModel()
	m, cmd := m.refreshPreview()
	if cmd != nil || m.preview.path != "" {
		t.Fatal("no preview below the panel width")
	}
}

func TestPreviewDirectoryNeedsNoLoad(t *testing.T) {
	m := newTestModel(WithSize(120, 30), WithTiles("src/", "main.go"))
	m.preview = previewState{}
	m, cmd := m.refreshPreview()
	if cmd != nil || m.preview.loading || m.preview.path != testRoot+"/src" {
		t.Fatalf("directory preview should not load, got %+v", m.preview)
	}
}
