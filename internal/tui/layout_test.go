package tui

import "testing"

func TestLayoutColumns(t *testing.T) {
	tests := []struct {
		width, tileWidth, want int
	}{
		{36, 12, 3},
		{35, 12, 2},
		{11, 12, 1},
		{0, 12, 1},
		{80, 0, 1},
	}
	for _, tt := range tests {
		if got := layoutColumns(tt.width, tt.tileWidth); got != tt.want {
			t.Fatalf("layoutColumns(%d, %d) = %d, want %d", tt.width, tt.tileWidth, got, tt.want)
		}
	}
}

func TestLayoutTilesAssignsOffsets(t *testing.T) {
	tiles := testTiles("a", "b", "c", "d", "e")
	layoutTiles(tiles, 2, 10)

	want := [][2]int{{0, 0}, {10, 0}, {0, 1}, {10, 1}, {0, 2}}
	for i, tl := range tiles {
		if tl.x != want[i][0] || tl.y != want[i][1] {
			t.Fatalf("tile %d at (%d,%d), want (%d,%d)", i, tl.x, tl.y, want[i][0], want[i][1])
		}
	}
}

func TestLayoutOffsetsDriveColumnEstimate(t *testing.T) {
	m := newTestModel(WithSize(60, 20))
	if got := m.Columns(); got != 5 {
		t.Fatalf("Columns() = %d, want 5", got)
	}
	for i, tl := range m.tiles.visible {
		if want := float64((i % 5) * 12); tileOffset(tl) != want {
			t.Fatalf("tile %d offset %v, want %v", i, tileOffset(tl), want)
		}
	}
}

func TestSingleRowEstimatesOneColumn(t *testing.T) {
	m := newTestModel(WithSize(120, 20), WithTiles("a", "b", "c", "d"))
	if got := m.Columns(); got != 1 {
		t.Fatalf("a grid that never wraps estimates one column, got %d", got)
	}
}

func TestPanelSplitsWidth(t *testing.T) {
	m := newTestModel(WithSize(120, 30))
	if !m.showPanel() {
		t.Fatal("expected preview panel at width 120")
	}
	if m.panelWidth() != 48 || m.gridWidth() != 72 {
		t.Fatalf("panel=%d grid=%d, want 48/72", m.panelWidth(), m.gridWidth())
	}
	if got := m.Columns(); got != 6 {
		t.Fatalf("Columns() = %d, want 6", got)
	}

	m = newTestModel(WithSize(99, 30))
	if m.showPanel() || m.gridWidth() != 99 {
		t.Fatalf("no panel below %d columns", panelMinWidth)
	}
}

func TestGridHeight(t *testing.T) {
	m := newTestModel(WithSize(80, 10))
	if got := m.gridHeight(); got != 5 {
		t.Fatalf("gridHeight() = %d, want 5", got)
	}
	m = newTestModel(WithSize(80, 2))
	if got := m.gridHeight(); got != 1 {
		t.Fatalf("gridHeight() clamps to 1, got %d", got)
	}
}

func TestSortTilesDirectoriesFirst(t *testing.T) {
	tiles := testTiles("b.txt", "Zeta/", "a.txt", "alpha/", "B.md")
	sortTiles(tiles)
	want := []string{"alpha", "Zeta", "a.txt", "B.md", "b.txt"}
	for i, tl := range tiles {
		if tl.rel != want[i] {
			t.Fatalf("position %d = %q, want %q", i, tl.rel, want[i])
		}
	}
}
