package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestPreviewLexer(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "empty filename", filename: "", want: ""},
		{name: "go source file", filename: "/src/main.go", want: "Go"},
		{name: "yaml file", filename: "config.yaml", want: "YAML"},
		{name: "unknown file", filename: "notes.tilenavunknown", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lexer := previewLexer(tc.filename)
			if tc.want == "" {
				if lexer != nil {
					t.Fatalf("previewLexer(%q) = %q, want nil", tc.filename, lexer.Config().Name)
				}
				return
			}
			if lexer == nil {
				t.Fatalf("previewLexer(%q) = nil, want %q", tc.filename, tc.want)
			}
			if got := lexer.Config().Name; got != tc.want {
				t.Fatalf("previewLexer(%q) = %q, want %q", tc.filename, got, tc.want)
			}
		})
	}
}

func TestHighlightPreviewUnknownLanguage(t *testing.T) {
	source := "plain text\nline two"
	if got := highlightPreview(source, "README.tilenavunknown"); got != source {
		t.Fatalf("unknown language should pass through:\nwant: %q\ngot:  %q", source, got)
	}
}

func TestHighlightPreviewPreservesText(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		endsWithN bool
	}{
		{name: "without trailing newline", source: "package main", endsWithN: false},
		{name: "with trailing newline", source: "package main\n", endsWithN: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := highlightPreview(tc.source, "main.go")
			if plain := ansi.Strip(got); plain != tc.source {
				t.Fatalf("highlighted text changed:\nwant: %q\ngot:  %q", tc.source, plain)
			}
			if strings.HasSuffix(got, "\n") != tc.endsWithN {
				t.Fatalf("trailing newline: got=%t want=%t", strings.HasSuffix(got, "\n"), tc.endsWithN)
			}
		})
	}
}

func TestHighlightPreviewWithoutStyleName(t *testing.T) {
	prev := activeTheme
	t.Cleanup(func() { activeTheme = prev })

	theme := ThemeDark()
	theme.ChromaStyleName = ""
	activeTheme = theme

	source := "package main\n"
	if plain := ansi.Strip(highlightPreview(source, "main.go")); plain != source {
		t.Fatalf("fallback style changed text:\nwant: %q\ngot:  %q", source, plain)
	}
}
