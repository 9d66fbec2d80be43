package help

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics for a color terminal
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", "auto", or a path to a custom style
	Width int    // 0 keeps glamour's default wrapping
}

// NewGlamourRenderer creates a markdown renderer with an auto-detected style
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to styled terminal output. Anything that is
// not markdown, or that glamour fails on, comes back unchanged.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
