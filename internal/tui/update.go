package tui

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
)

// Update implements tea.Model by dispatching messages to the appropriate handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.logMsg(msg)

	// Background detection applies even while the picker is open.
	if bgMsg, ok := msg.(tea.BackgroundColorMsg); ok {
		SetTheme(ThemeForBackground(bgMsg.IsDark()))
		restyleFilterInput(&m.filterInput)
		m.help.Styles = helpStyles(bgMsg.IsDark())
		return m, nil
	}

	if m.picker != nil {
		if keyMsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(keyMsg, AppKeys.ForceQuit) {
			return m, tea.Quit
		}
		return m.handlePickerUpdate(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case tilesScannedMsg:
		return m.handleTilesScanned(msg)
	case previewLoadedMsg:
		return m.handlePreviewLoaded(msg)
	case tea.KeyPressMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleResize relayouts for the new width and notifies the navigator, which
// estimates the column count again on next use.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.SetWidth(msg.Width)
	m.relayout()
	m.resize.Notify()
	m.reannounce()
	return m.refreshPreview()
}

func (m Model) handleTilesScanned(msg tilesScannedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}
	m.loading = false
	m.scanErr = msg.err
	m.truncated = msg.stats.truncated
	if msg.err != nil {
		return m, nil
	}
	m.setTiles(msg.tiles)
	return m.refreshPreview()
}

// --- Root key gate ---

func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, AppKeys.ForceQuit) {
		return m, tea.Quit
	}

	if m.filterInput.Focused() {
		return m.handleFilterKeys(msg)
	}

	// The grid key map wins over app keys it collides with.
	if m.nav.HandleKey(msg) {
		m.message = ""
		return m.refreshPreview()
	}

	switch {
	case key.Matches(msg, AppKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, AppKeys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, AppKeys.Filter):
		cmd := m.filterInput.Focus()
		return m, cmd
	case key.Matches(msg, AppKeys.Refresh):
		return m.rescan()
	case key.Matches(msg, AppKeys.KeyMaps):
		return m.openPicker()
	case key.Matches(msg, AppKeys.Clear):
		if m.filterInput.Value() != "" {
			m.filterInput.Reset()
			m.applyFilter()
			return m.refreshPreview()
		}
	}
	return m, nil
}

func (m Model) handleFilterKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, FilterKeys.Accept):
		m.filterInput.Blur()
		return m, nil
	case key.Matches(msg, FilterKeys.Cancel):
		m.filterInput.Blur()
		m.filterInput.Reset()
		m.applyFilter()
		return m.refreshPreview()
	}

	before := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() == before {
		return m, cmd
	}
	m.applyFilter()
	m, pcmd := m.refreshPreview()
	return m, tea.Batch(cmd, pcmd)
}
