package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	devicons "github.com/epilande/go-devicons"
)

// IconMode controls which icon set tiles are drawn with.
type IconMode string

const (
	IconModeNerdFont IconMode = "nerdfont"
	IconModeUnicode  IconMode = "unicode"
	IconModeNone     IconMode = "none"
)

// ParseIconMode validates and normalizes an icon mode string. Empty means nerdfont.
func ParseIconMode(s string) (IconMode, error) {
	switch m := IconMode(strings.TrimSpace(strings.ToLower(s))); m {
	case "":
		return IconModeNerdFont, nil
	case IconModeNerdFont, IconModeUnicode, IconModeNone:
		return m, nil
	default:
		return "", fmt.Errorf("invalid icons mode %q (valid: nerdfont, unicode, none)", s)
	}
}

const (
	nerdFontDirIcon    = "\uf115"     // nf-fa-folder_open_o
	unicodeDirIcon     = "\U0001F4C1" // 📁
	unicodeDefaultIcon = "\U0001F4C4" // 📄
)

// unicodeIconsByKind groups extensions by the symbol they share.
var unicodeIconsByKind = map[string][]string{
	"\U0001F4DD": {".md", ".rst", ".txt"},                            // 📝
	"\U0001F5BC": {".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp"}, // 🖼
	"\U0001F4E6": {".zip", ".tar", ".gz", ".bz2", ".xz", ".zst"},     // 📦
	"\u2699":     {".yaml", ".yml", ".toml", ".json", ".ini", ".conf"}, // ⚙
	"\u25B6":     {".sh", ".bash", ".zsh", ".fish"},                   // ▶
	"\u03BB":     {".go", ".py", ".rs", ".js", ".ts", ".c", ".lua"},   // λ
}

var unicodeIcons = func() map[string]string {
	m := make(map[string]string)
	for icon, exts := range unicodeIconsByKind {
		for _, ext := range exts {
			m[ext] = icon
		}
	}
	return m
}()

// tileIcon returns the glyph and, for nerdfont file icons, its hex color.
func tileIcon(t *tile, mode IconMode) (glyph, hexColor string) {
	switch mode {
	case IconModeUnicode:
		if t.dir {
			return unicodeDirIcon, ""
		}
		if icon, ok := unicodeIcons[strings.ToLower(filepath.Ext(t.name))]; ok {
			return icon, ""
		}
		return unicodeDefaultIcon, ""
	case IconModeNerdFont:
		if t.dir {
			return nerdFontDirIcon, ""
		}
		style := devicons.IconForPath(t.path)
		return style.Icon, style.Color
	default:
		return "", ""
	}
}

// renderTileIcon returns the styled icon plus a trailing space, or "" in
// IconModeNone. Selected tiles drop the icon color so the selection style wins.
func renderTileIcon(t *tile, mode IconMode) string {
	glyph, hexColor := tileIcon(t, mode)
	if glyph == "" {
		return ""
	}
	switch {
	case t.selected:
		return glyph + " "
	case hexColor != "":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor)).Render(glyph) + " "
	case t.dir:
		return activeTheme.PrimaryFg.Render(glyph) + " "
	default:
		return activeTheme.DimText.Render(glyph) + " "
	}
}
