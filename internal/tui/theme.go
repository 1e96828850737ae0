package tui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	catppuccin "github.com/catppuccin/go"
)

// Theme holds the semantic colors and pre-computed styles for the tile browser.
type Theme struct {
	Primary color.Color
	Accent  color.Color
	Danger  color.Color
	Dim     color.Color

	Tile         lipgloss.Style
	TileSelected lipgloss.Style
	DirName      lipgloss.Style

	Normal   lipgloss.Style
	DimText  lipgloss.Style
	HintText lipgloss.Style

	BoldPrimary lipgloss.Style
	PrimaryFg   lipgloss.Style
	DangerFg    lipgloss.Style
	Branch      lipgloss.Style

	StatusBar lipgloss.Style
	Filter    lipgloss.Style
	Panel     lipgloss.Style
	PickerBox lipgloss.Style

	ChromaStyleName string
}

var activeTheme = ThemeDark()

// SetTheme sets the active global theme.
func SetTheme(t Theme) { activeTheme = t }

// ThemeDark returns the Catppuccin Mocha theme.
func ThemeDark() Theme { return newTheme(catppuccin.Mocha, true) }

// ThemeLight returns the Catppuccin Latte theme.
func ThemeLight() Theme { return newTheme(catppuccin.Latte, false) }

// ThemeForBackground picks the theme matching the terminal background.
func ThemeForBackground(isDark bool) Theme {
	if isDark {
		return ThemeDark()
	}
	return ThemeLight()
}

func hex(c catppuccin.Color) color.Color { return lipgloss.Color(c.Hex) }

func newTheme(flavor catppuccin.Flavor, isDark bool) Theme {
	primary := hex(flavor.Sapphire())
	accent := hex(flavor.Yellow())
	text := hex(flavor.Text())

	// Light terminals need the darker content token for dim text.
	dim, hint := hex(flavor.Overlay1()), hex(flavor.Subtext0())
	if !isDark {
		dim, hint = hint, dim
	}

	chromaStyle := "catppuccin-mocha"
	if !isDark {
		chromaStyle = "catppuccin-latte"
	}

	t := Theme{
		Primary: primary,
		Accent:  accent,
		Danger:  hex(flavor.Red()),
		Dim:     dim,

		ChromaStyleName: chromaStyle,
	}

	t.Tile = lipgloss.NewStyle().Foreground(text)
	t.TileSelected = lipgloss.NewStyle().
		Background(hex(flavor.Surface0())).
		Foreground(accent).
		Bold(true)
	t.DirName = lipgloss.NewStyle().Foreground(primary)

	t.Normal = lipgloss.NewStyle().Foreground(text)
	t.DimText = lipgloss.NewStyle().Foreground(dim)
	t.HintText = lipgloss.NewStyle().Foreground(hint)

	t.BoldPrimary = lipgloss.NewStyle().Bold(true).Foreground(primary)
	t.PrimaryFg = lipgloss.NewStyle().Foreground(primary)
	t.DangerFg = lipgloss.NewStyle().Foreground(t.Danger)
	t.Branch = lipgloss.NewStyle().Foreground(hex(flavor.Overlay0()))

	t.StatusBar = lipgloss.NewStyle().
		Background(hex(flavor.Mantle())).
		Foreground(text).
		Padding(0, 1)

	t.Filter = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(0, 1)

	t.Panel = lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dim).
		Padding(0, 1)

	t.PickerBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(1, 2).
		Width(pickerBoxWidth)

	return t
}
