package tui

// --- Layout Calculations ---

const (
	// headerLines: breadcrumb + separator + filter/info line.
	headerLines = 3
	// footerLines: status bar + short help line.
	footerLines = 2

	// panelMinWidth is the terminal width at which the preview panel appears.
	panelMinWidth = 100

	pickerBoxWidth = 60
)

// layoutColumns is how many tiles fit across width.
func layoutColumns(width, tileWidth int) int {
	if tileWidth <= 0 || width < tileWidth {
		return 1
	}
	return width / tileWidth
}

// layoutTiles flows tiles left to right, top to bottom, cols per row.
func layoutTiles(tiles []*tile, cols, tileWidth int) {
	cols = max(cols, 1)
	for i, t := range tiles {
		t.x = (i % cols) * tileWidth
		t.y = i / cols
	}
}

func clampHeight(height int) int {
	if height < 1 {
		return 1
	}
	return height
}

func (m Model) effectiveWidth() int {
	if m.width == 0 {
		return 80
	}
	return m.width
}

func (m Model) showPanel() bool {
	return m.effectiveWidth() >= panelMinWidth
}

func (m Model) panelWidth() int {
	if !m.showPanel() {
		return 0
	}
	return m.effectiveWidth() * 2 / 5
}

// gridWidth is the width tiles wrap at.
func (m Model) gridWidth() int {
	return m.effectiveWidth() - m.panelWidth()
}

func (m Model) gridHeight() int {
	if m.height == 0 {
		return 0
	}
	return clampHeight(m.height - headerLines - footerLines)
}

// relayout recomputes tile positions for the current width. A fixed column
// count from the options overrides the width.
func (m Model) relayout() {
	cols := m.opts.Columns
	if cols <= 0 {
		cols = layoutColumns(m.gridWidth(), m.tileWidth)
	}
	layoutTiles(m.tiles.visible, cols, m.tileWidth)
}
