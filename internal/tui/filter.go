package tui

import (
	"charm.land/bubbles/v2/textinput"
	"github.com/sahilm/fuzzy"
)

// relPaths adapts a tile slice to fuzzy.Source.
type relPaths []*tile

func (r relPaths) String(i int) string { return r[i].rel }
func (r relPaths) Len() int            { return len(r) }

// filterTiles returns the tiles whose relative path fuzzy-matches query, in
// scan order. An empty query returns all tiles.
func filterTiles(query string, tiles []*tile) []*tile {
	if query == "" {
		return tiles
	}
	matches := fuzzy.FindFromNoSort(query, relPaths(tiles))
	out := make([]*tile, 0, len(matches))
	for _, match := range matches {
		out = append(out, tiles[match.Index])
	}
	return out
}

func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Prompt = "/ "
	ti.CharLimit = 120
	ti.SetWidth(40)
	restyleFilterInput(&ti)
	return ti
}

// restyleFilterInput applies the active theme without touching value or focus.
func restyleFilterInput(ti *textinput.Model) {
	s := ti.Styles()
	s.Focused.Prompt = activeTheme.PrimaryFg
	s.Blurred.Prompt = activeTheme.PrimaryFg
	ti.SetStyles(s)
}

// applyFilter recomputes the visible tiles and invalidates the navigator.
// The selection survives when its tile still matches.
func (m Model) applyFilter() {
	m.tiles.visible = filterTiles(m.filterInput.Value(), m.tiles.all)
	m.relayout()
	m.nav.MarkStale()
	m.reannounce()
}
