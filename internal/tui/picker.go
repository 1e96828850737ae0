package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/daptify14/tilenav/internal/keymap"
)

var presetDescriptions = map[string]string{
	keymap.PresetStandard: "arrows, home/end, page keys",
	keymap.PresetNumpad:   "keypad digits",
	keymap.PresetVi:       "h/j/k/l, 0/$, g/G",
	keymap.PresetEmacs:    "ctrl+a/e/b/f/n/p",
	keymap.PresetAll:      "all of the above",
}

// openPicker builds the key-map select form and returns its Init cmd.
func (m Model) openPicker() (Model, tea.Cmd) {
	m.picker = buildPickerForm(m.keyMapName)
	return m, m.picker.Init()
}

func buildPickerForm(current string) *huh.Form {
	names := keymap.PresetNames()
	opts := make([]huh.Option[string], 0, len(names))
	for _, name := range names {
		label := fmt.Sprintf("%-9s %s", name, presetDescriptions[name])
		opts = append(opts, huh.NewOption(label, name))
	}

	choice := current
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("preset").
				Title("Key Map").
				Options(opts...).
				Value(&choice),
		),
	).WithTheme(huh.ThemeFunc(huh.ThemeCatppuccin)).
		WithWidth(pickerBoxWidth - 4).
		WithShowHelp(false)
}

// handlePickerUpdate routes messages to the picker form and applies the
// chosen preset on completion.
func (m Model) handlePickerUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.picker.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.picker = f
	}

	switch m.picker.State {
	case huh.StateCompleted:
		name := m.picker.GetString("preset")
		m.picker = nil
		return m.applyPreset(name), nil
	case huh.StateAborted:
		m.picker = nil
		return m, nil
	}
	return m, cmd
}

// applyPreset installs the named preset with the configured per-key
// overrides on top.
func (m Model) applyPreset(name string) Model {
	km, err := keymap.Preset(name)
	if err != nil {
		m.message = err.Error()
		return m
	}
	m.nav.SetKeyMap(keymap.Merge(km, m.opts.KeyOverrides))
	m.keyMapName = name
	m.message = "Key map: " + name
	if len(m.opts.KeyOverrides) > 0 {
		m.message += " (+ overrides)"
	}
	return m
}

func (m Model) renderPicker() string {
	box := activeTheme.PickerBox.Render(m.picker.View())
	return lipgloss.Place(m.effectiveWidth(), max(m.height, 1), lipgloss.Center, lipgloss.Center, box)
}
