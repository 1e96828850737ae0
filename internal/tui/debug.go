package tui

import (
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
)

// logMsg logs a tea.Msg to the debug logger. No-op when debugLog is nil.
func (m Model) logMsg(msg tea.Msg) {
	if m.debugLog == nil {
		return
	}
	if _, ok := msg.(spinner.TickMsg); ok {
		return
	}
	m.debugLog.Info("msg",
		"type", fmt.Sprintf("%T", msg),
		"detail", formatMsgDetail(msg),
	)
}

// formatMsgDetail extracts key fields from known message types. Unknown
// types log their type name only; never %#v, since tea.EnvMsg carries the
// full environment.
func formatMsgDetail(msg tea.Msg) string {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return msg.String()
	case tea.WindowSizeMsg:
		return fmt.Sprintf("%dx%d", msg.Width, msg.Height)
	case tea.BackgroundColorMsg:
		return fmt.Sprintf("dark=%t", msg.IsDark())
	case tilesScannedMsg:
		if msg.err != nil {
			return fmt.Sprintf("gen=%d err=%q", msg.gen, msg.err.Error())
		}
		return fmt.Sprintf("gen=%d tiles=%d truncated=%t elapsed=%s",
			msg.gen, len(msg.tiles), msg.stats.truncated, msg.stats.elapsed)
	case previewLoadedMsg:
		if msg.err != nil {
			return fmt.Sprintf("path=%q err=%q", msg.path, msg.err.Error())
		}
		return fmt.Sprintf("path=%q len=%d binary=%t", msg.path, len(msg.content), msg.binary)
	default:
		return ""
	}
}
