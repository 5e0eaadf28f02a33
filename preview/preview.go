// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: preview/preview.go
// Summary: Syntax-highlighted rendering of manifest bytes into styled spans.
// Usage: The launch page's detail pane calls Render with the selected
// instance's raw manifest and draws the resulting lines span by span.

package preview

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

const defaultStyleName = "catppuccin-mocha"

// Span is a run of characters sharing one style.
type Span struct {
	Text  string
	Style tcell.Style
}

// Line is one row of highlighted output.
type Line struct {
	Spans []Span
}

// Text returns the line's text without styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Options configure Render.
type Options struct {
	// Filename hints language inference (e.g. the manifest path base).
	Filename string

	// Language overrides inference when set (a lexer name).
	Language string

	// StyleName selects the chroma style; empty means catppuccin-mocha.
	StyleName string

	// Base is the style spans start from. Token colors replace its
	// foreground, the background is left alone so the pane's surface
	// shows through.
	Base tcell.Style

	// MaxLines caps the output when > 0.
	MaxLines int
}

// Render highlights src into styled lines.
func Render(src []byte, opts Options) []Line {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")
	if text == "" {
		return nil
	}

	lang := opts.Language
	if lang == "" {
		lang = Infer(opts.Filename, src).Name
	}

	lexer := chroma.Coalesce(getLexer(lang, text))
	style := chromaStyle(opts.StyleName)

	tokens, err := chroma.Tokenise(lexer, nil, text)
	if err != nil {
		return plainLines(text, opts)
	}

	// Tokens matching the style's base text color keep the pane's own
	// foreground instead.
	baseColour := style.Get(chroma.Text).Colour

	lines := []Line{{}}
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		st := tokenStyle(style.Get(tok.Type), baseColour, opts.Base)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				if opts.MaxLines > 0 && len(lines) >= opts.MaxLines {
					return lines
				}
				lines = append(lines, Line{})
			}
			if part == "" {
				continue
			}
			cur := &lines[len(lines)-1]
			cur.Spans = append(cur.Spans, Span{Text: part, Style: st})
		}
	}

	// A trailing newline leaves an empty final line; drop it.
	if n := len(lines); n > 0 && len(lines[n-1].Spans) == 0 {
		lines = lines[:n-1]
	}
	return lines
}

func plainLines(text string, opts Options) []Line {
	var lines []Line
	for _, ln := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if opts.MaxLines > 0 && len(lines) >= opts.MaxLines {
			break
		}
		line := Line{}
		if ln != "" {
			line.Spans = []Span{{Text: ln, Style: opts.Base}}
		}
		lines = append(lines, line)
	}
	return lines
}

// tokenStyle folds a chroma style entry onto the base style.
func tokenStyle(entry chroma.StyleEntry, baseColour chroma.Colour, base tcell.Style) tcell.Style {
	st := base
	if entry.Colour.IsSet() && entry.Colour != baseColour {
		st = st.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue())))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

// getLexer returns a lexer by name, or auto-detects from content.
func getLexer(name, text string) chroma.Lexer {
	if name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

// chromaStyle resolves a style name, falling back to the default.
func chromaStyle(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	return styles.Get(name)
}
