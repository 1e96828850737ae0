package tui

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
)

// previewMaxBytes caps how much of a file the preview reads.
const previewMaxBytes = 16 * 1024

type previewState struct {
	path    string // path the panel shows or is loading
	lines   []string
	binary  bool
	err     error
	loading bool
}

// readPreview returns the head of path and whether it looks binary.
func readPreview(path string) (string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, previewMaxBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	buf = buf[:n]
	if bytes.IndexByte(buf, 0) >= 0 {
		return "", true, nil
	}
	return string(buf), false, nil
}

func previewCmd(path string) tea.Cmd {
	return func() tea.Msg {
		content, binary, err := readPreview(path)
		return previewLoadedMsg{path: path, content: content, binary: binary, err: err}
	}
}

// refreshPreview requests a preview of the selected tile when the panel is
// visible and the selection moved to a different file.
func (m Model) refreshPreview() (Model, tea.Cmd) {
	cur := m.currentTile()
	if !m.showPanel() || cur == nil {
		m.preview = previewState{}
		return m, nil
	}
	if cur.path == m.preview.path {
		return m, nil
	}
	m.preview = previewState{path: cur.path}
	if cur.dir {
		return m, nil
	}
	m.preview.loading = true
	return m, previewCmd(cur.path)
}

func (m Model) handlePreviewLoaded(msg previewLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.path != m.preview.path {
		return m, nil
	}
	m.preview.loading = false
	m.preview.err = msg.err
	m.preview.binary = msg.binary
	m.preview.lines = nil
	if msg.err == nil && !msg.binary {
		text := strings.ReplaceAll(highlightPreview(msg.content, msg.path), "\t", "    ")
		m.preview.lines = strings.Split(strings.TrimRight(text, "\n"), "\n")
	}
	return m, nil
}
