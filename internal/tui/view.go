package tui

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/daptify14/tilenav/internal/keymap"
)

// helpColumnSize is the number of bindings per full-help column.
const helpColumnSize = 4

// View implements tea.Model by rendering the current screen state.
func (m Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if m.picker != nil {
		v.Content = m.renderPicker()
		return v
	}

	width := m.effectiveWidth()
	helpView := m.renderHelp()
	gridHeight := m.gridHeight()
	if m.help.ShowAll && m.height > 0 {
		gridHeight = clampHeight(m.height - headerLines - 1 - lipgloss.Height(helpView))
	}

	body := m.renderGrid(gridHeight)
	if m.showPanel() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderPanel(gridHeight))
	}

	v.Content = strings.Join([]string{
		renderBreadcrumb(appName, m.displayRoot()),
		renderSeparator(width),
		m.renderInfoLine(),
		body,
		m.renderStatusBar(),
		helpView,
	}, "\n")
	return v
}

func (m Model) displayRoot() string {
	home, _ := os.UserHomeDir()
	return shortenPath(m.root, home)
}

// renderInfoLine shows the filter input while it is active or non-empty,
// otherwise the filter hint.
func (m Model) renderInfoLine() string {
	if m.filterInput.Focused() || m.filterInput.Value() != "" {
		return " " + m.filterInput.View()
	}
	return " " + activeTheme.HintText.Render("/ to filter")
}

// renderGrid draws the visible rows of tiles, each line padded to the grid width.
func (m Model) renderGrid(height int) string {
	width := m.gridWidth()
	var lines []string

	items := m.tiles.visible
	switch {
	case m.loading && len(m.tiles.all) == 0:
		lines = []string{" " + m.spinner.View() + " Scanning..."}
	case m.scanErr != nil:
		lines = []string{" " + activeTheme.DangerFg.Render("Scan failed: "+m.scanErr.Error())}
	case len(items) == 0 && m.filterInput.Value() != "":
		lines = []string{" " + activeTheme.DimText.Render("No matching tiles")}
	case len(items) == 0:
		lines = []string{" " + activeTheme.DimText.Render("Empty directory")}
	default:
		lines = m.renderTileRows(height)
	}

	for i, line := range lines {
		lines[i] = visualPad(visualTruncate(line, width), width)
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTileRows(height int) []string {
	items := m.tiles.visible
	rows := items[len(items)-1].y + 1
	cursorRow := 0
	if cur := m.currentTile(); cur != nil {
		cursorRow = cur.y
	}
	start, end := visibleRange(rows, cursorRow, height)

	var b strings.Builder
	lines := make([]string, 0, end-start)
	row := start
	for _, t := range items {
		if t.y < start {
			continue
		}
		if t.y >= end {
			break
		}
		if t.y != row {
			lines = append(lines, b.String())
			b.Reset()
			row = t.y
		}
		b.WriteString(m.renderTile(t))
	}
	if b.Len() > 0 {
		lines = append(lines, b.String())
	}
	return lines
}

// renderTile draws one cell: icon and label padded to the tile width, with
// a one-column gap.
func (m Model) renderTile(t *tile) string {
	w := max(m.tileWidth-1, 1)
	icon := renderTileIcon(t, m.iconMode)
	label := visualTruncate(t.label(), w-lipgloss.Width(icon))

	style := activeTheme.Tile
	switch {
	case t.selected:
		style = activeTheme.TileSelected
	case t.dir:
		style = activeTheme.DirName
	}
	return icon + style.Render(visualPad(label, w-lipgloss.Width(icon))) + " "
}

// renderPanel draws the preview of the selected tile.
func (m Model) renderPanel(height int) string {
	contentWidth := max(m.panelWidth()-3, 1)
	cur := m.currentTile()

	var lines []string
	switch {
	case cur == nil:
	case cur.dir:
		lines = []string{activeTheme.BoldPrimary.Render(cur.name + "/"), activeTheme.DimText.Render("directory")}
	default:
		lines = append(lines, activeTheme.BoldPrimary.Render(cur.name)+"  "+
			activeTheme.DimText.Render(humanize.IBytes(uint64(max(cur.size, 0)))))
		switch {
		case m.preview.loading:
			lines = append(lines, activeTheme.DimText.Render("Loading..."))
		case m.preview.err != nil:
			lines = append(lines, activeTheme.DangerFg.Render(m.preview.err.Error()))
		case m.preview.binary:
			lines = append(lines, activeTheme.DimText.Render("binary file"))
		default:
			lines = append(lines, m.preview.lines...)
		}
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = visualPad(visualTruncate(line, contentWidth), contentWidth)
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", contentWidth))
	}
	return activeTheme.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.message != "":
		left = m.message
	case len(m.tiles.visible) == 0:
		left = "0 tiles"
	default:
		left = fmt.Sprintf("%d/%d", m.nav.Index()+1, len(m.tiles.visible))
		if n := len(m.tiles.all); n != len(m.tiles.visible) {
			left += fmt.Sprintf(" (of %d)", n)
		}
	}
	if m.truncated {
		left += " · truncated"
	}
	right := fmt.Sprintf("%d cols · %s", m.Columns(), m.keyMapName)

	width := m.effectiveWidth()
	gap := max(width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return activeTheme.StatusBar.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderHelp() string {
	if !m.help.ShowAll {
		return m.help.ShortHelpView(AppKeys.ShortHelp())
	}
	nav := keymap.Bindings(keymap.Map(m.nav.KeyMap()))
	var groups [][]key.Binding
	for chunk := range slices.Chunk(nav, helpColumnSize) {
		groups = append(groups, chunk)
	}
	groups = append(groups, AppKeys.FullHelp())
	return m.help.FullHelpView(groups)
}
