// Package keymap holds the key-name to grid command tables, the translator
// from bubbletea key events to table keys, and helpers to present them.
package keymap

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/daptify14/tilenav/internal/grid"
)

// Map maps canonical key names to grid commands.
type Map map[string]grid.Command

// Preset names accepted by Preset.
const (
	PresetStandard = "standard"
	PresetNumpad   = "numpad"
	PresetVi       = "vi"
	PresetEmacs    = "emacs"
	PresetAll      = "all"
)

// ErrUnknownPreset is returned by Preset for an unrecognized name.
var ErrUnknownPreset = errors.New("unknown keymap preset")

var presets = map[string]Map{
	PresetStandard: Standard,
	PresetNumpad:   Numpad,
	PresetVi:       Vi,
	PresetEmacs:    Emacs,
	PresetAll:      Consolidated,
}

// PresetNames lists the preset names in display order.
func PresetNames() []string {
	return []string{PresetStandard, PresetNumpad, PresetVi, PresetEmacs, PresetAll}
}

// Preset returns a copy of the named preset.
func Preset(name string) (Map, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	m, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return maps.Clone(m), nil
}

// Merge combines maps into a new one. Later maps win on conflicting keys.
func Merge(ms ...Map) Map {
	out := make(Map)
	for _, m := range ms {
		maps.Copy(out, m)
	}
	return out
}

// Validate reports the first entry whose command is unknown.
func (m Map) Validate() error {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if !m[k].Valid() {
			return fmt.Errorf("key %q: unknown command %q", k, m[k])
		}
	}
	return nil
}

// Commands returns the grid form of m for grid.NavigatorConfig.
func (m Map) Commands() map[string]grid.Command {
	return map[string]grid.Command(m)
}

// KeysFor returns the sorted keys bound to cmd.
func (m Map) KeysFor(cmd grid.Command) []string {
	var keys []string
	for k, c := range m {
		if c == cmd {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// ParseOverrides converts user-supplied key to command-name pairs into a
// Map, rejecting empty keys and unknown commands.
func ParseOverrides(raw map[string]string) (Map, error) {
	out := make(Map, len(raw))
	for _, k := range slices.Sorted(maps.Keys(raw)) {
		name := strings.TrimSpace(k)
		if name == "" {
			return nil, errors.New("key override with empty key name")
		}
		cmd, err := grid.ParseCommand(strings.TrimSpace(raw[k]))
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", name, err)
		}
		out[name] = cmd
	}
	return out, nil
}
