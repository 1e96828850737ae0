package tui

import (
	"fmt"
	"image/color"
	"strings"
	"testing"

	catppuccin "github.com/catppuccin/go"
)

func TestThemeRolesMatchFlavor(t *testing.T) {
	tests := []struct {
		name   string
		flavor catppuccin.Flavor
		theme  Theme
	}{
		{name: "dark", flavor: catppuccin.Mocha, theme: ThemeDark()},
		{name: "light", flavor: catppuccin.Latte, theme: ThemeLight()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			primary := normalizeHex(tc.flavor.Sapphire().Hex)
			accent := normalizeHex(tc.flavor.Yellow().Hex)

			assertColorHex(t, "PrimaryFg", tc.theme.PrimaryFg.GetForeground(), primary)
			assertColorHex(t, "DirName", tc.theme.DirName.GetForeground(), primary)
			assertColorHex(t, "BoldPrimary", tc.theme.BoldPrimary.GetForeground(), primary)
			assertColorHex(t, "Filter.BorderTopForeground", tc.theme.Filter.GetBorderTopForeground(), primary)
			assertColorHex(t, "TileSelected.Foreground", tc.theme.TileSelected.GetForeground(), accent)
			assertColorHex(t, "TileSelected.Background", tc.theme.TileSelected.GetBackground(), normalizeHex(tc.flavor.Surface0().Hex))
			assertColorHex(t, "StatusBar.Background", tc.theme.StatusBar.GetBackground(), normalizeHex(tc.flavor.Mantle().Hex))
			assertColorHex(t, "DangerFg", tc.theme.DangerFg.GetForeground(), normalizeHex(tc.flavor.Red().Hex))
			assertColorHex(t, "Tile", tc.theme.Tile.GetForeground(), normalizeHex(tc.flavor.Text().Hex))
		})
	}
}

func TestThemeSelectedTileIsBold(t *testing.T) {
	if !ThemeDark().TileSelected.GetBold() {
		t.Fatal("selected tile style should be bold")
	}
}

func TestThemeLightSwapsDimAndHint(t *testing.T) {
	theme := ThemeLight()
	flavor := catppuccin.Latte

	assertColorHex(t, "DimText", theme.DimText.GetForeground(), normalizeHex(flavor.Subtext0().Hex))
	assertColorHex(t, "HintText", theme.HintText.GetForeground(), normalizeHex(flavor.Overlay1().Hex))
}

func TestThemeForBackground(t *testing.T) {
	dark := ThemeForBackground(true)
	light := ThemeForBackground(false)

	if colorHex(dark.PrimaryFg.GetForeground()) == colorHex(light.PrimaryFg.GetForeground()) {
		t.Fatal("dark and light themes should have distinct primary colors")
	}
	if dark.ChromaStyleName != "catppuccin-mocha" || light.ChromaStyleName != "catppuccin-latte" {
		t.Fatalf("chroma styles = %q/%q", dark.ChromaStyleName, light.ChromaStyleName)
	}
}

func assertColorHex(t *testing.T, field string, got color.Color, want string) {
	t.Helper()
	if gotHex := colorHex(got); gotHex != want {
		t.Fatalf("%s color mismatch: got %s want %s", field, gotHex, want)
	}
}

func colorHex(c color.Color) string {
	if c == nil {
		return ""
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", (r>>8)&0xFF, (g>>8)&0xFF, (b>>8)&0xFF)
}

func normalizeHex(hex string) string {
	hex = strings.ToLower(strings.TrimSpace(hex))
	if hex == "" {
		return ""
	}
	if !strings.HasPrefix(hex, "#") {
		return "#" + hex
	}
	return hex
}
