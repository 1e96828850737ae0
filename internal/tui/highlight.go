package tui

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const defaultChromaStyleName = "catppuccin-mocha"

// highlightPreview returns source with ANSI syntax colors for the language
// matched by filename. Unknown languages and highlighter errors return the
// source unchanged.
func highlightPreview(source, filename string) string {
	lexer := previewLexer(filename)
	if lexer == nil {
		return source
	}

	styleName := activeTheme.ChromaStyleName
	if styleName == "" {
		styleName = defaultChromaStyleName
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, source)
	if err != nil {
		return source
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}

	out := buf.String()
	if !strings.HasSuffix(source, "\n") {
		out = strings.TrimRight(out, "\n")
	}
	return out
}

// previewLexer matches on the base name, so dotfiles like .bashrc resolve too.
func previewLexer(filename string) chroma.Lexer {
	name := filepath.Base(filename)
	if filename == "" || name == "." || name == string(filepath.Separator) {
		return nil
	}
	return lexers.Match(name)
}
