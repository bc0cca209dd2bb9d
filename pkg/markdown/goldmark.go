package markdown

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Goldmark renders full CommonMark with GFM extensions. Raw HTML in the
// source is passed through, matching the pipeline's trust model.
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark makes a Goldmark renderer.
func NewGoldmark() *Goldmark {
	return &Goldmark{md: goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)}
}

// Render implements Renderer. A conversion failure yields an empty fragment.
func (g *Goldmark) Render(body string) string {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(body), &buf); err != nil {
		slog.Warn("goldmark conversion failed", slog.Any("err", err))
		return ""
	}
	return buf.String()
}

// New returns the renderer for the named engine: "goldmark" or the default
// pipeline for anything else.
func New(engine string) Renderer {
	if strings.EqualFold(strings.TrimSpace(engine), "goldmark") {
		return NewGoldmark()
	}
	return NewPipeline()
}
