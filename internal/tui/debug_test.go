package tui

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
)

func TestFormatMsgDetail(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want string
	}{
		{name: "key", msg: runeKey("j"), want: "j"},
		{name: "special key", msg: specialKey(tea.KeyPgDown), want: "pgdown"},
		{name: "resize", msg: tea.WindowSizeMsg{Width: 80, Height: 24}, want: "80x24"},
		{name: "background", msg: tea.BackgroundColorMsg{Color: color.Black}, want: "dark=true"},
		{name: "scan", msg: tilesScannedMsg{gen: 2, tiles: testTiles("a", "b")}, want: "gen=2 tiles=2 truncated=false elapsed=0s"},
		{name: "scan error", msg: tilesScannedMsg{gen: 3, err: errors.New("boom")}, want: `gen=3 err="boom"`},
		{name: "preview", msg: previewLoadedMsg{path: "/a", content: "xyz"}, want: `path="/a" len=3 binary=false`},
		{name: "unknown", msg: tea.QuitMsg{}, want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatMsgDetail(tc.msg); got != tc.want {
				t.Fatalf("formatMsgDetail = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLogMsgWritesJSONAndSkipsTicks(t *testing.T) {
	var buf bytes.Buffer
	m := newTestModel()
	m.debugLog = slog.New(slog.NewJSONHandler(&buf, nil))

	m.logMsg(spinner.TickMsg{})
	if buf.Len() != 0 {
		t.Fatalf("spinner ticks should not be logged, got %s", buf.String())
	}

	m.logMsg(tea.WindowSizeMsg{Width: 10, Height: 5})
	if out := buf.String(); !strings.Contains(out, `"detail":"10x5"`) {
		t.Fatalf("expected resize detail in log, got %s", out)
	}
}
