package tui

import (
	"cmp"
	"slices"
	"strings"
)

// tile is one directory entry on the grid. Tiles are handled by pointer so
// the navigator tracks them by identity across filtering and relayout.
type tile struct {
	name string
	path string // absolute
	rel  string // relative to the scan root; the filter matches on this
	dir  bool
	size int64

	// Cell position assigned by layoutTiles.
	x, y int

	// Toggled by the navigator's selection callback.
	selected bool
}

func (t *tile) label() string {
	if t.dir {
		return t.rel + "/"
	}
	return t.rel
}

func tileOffset(t *tile) float64 { return float64(t.x) }

// sortTiles orders directories first, then case-insensitively by path.
func sortTiles(tiles []*tile) {
	slices.SortFunc(tiles, func(a, b *tile) int {
		if a.dir != b.dir {
			if a.dir {
				return -1
			}
			return 1
		}
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.rel), strings.ToLower(b.rel)),
			cmp.Compare(a.rel, b.rel),
		)
	})
}

// tileSet is shared by every copy of Model; the navigator's items provider
// reads visible through it.
type tileSet struct {
	all     []*tile
	visible []*tile
}

func (s *tileSet) items() []*tile { return s.visible }

func (s *tileSet) clearSelection() {
	for _, t := range s.all {
		t.selected = false
	}
}
