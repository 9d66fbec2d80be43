// Package ui renders search reports in different formats.
// It supports terminal (rich), text (plain), and JSON output formats.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/minigrep/pkg/types"
	"github.com/arthur-debert/minigrep/pkg/ui/json"
	"github.com/arthur-debert/minigrep/pkg/ui/terminal"
	"github.com/arthur-debert/minigrep/pkg/ui/text"
)

// Renderer is the common interface for all report renderers.
type Renderer interface {
	// Render writes the whole report
	Render(report *types.Report) error
}

// Options tune the human-readable renderers. JSON ignores them.
type Options struct {
	Header      bool
	LineNumbers bool
	Highlight   bool
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto inspects output: only an *os.File attached to a color
// terminal gets the terminal renderer.
func NewRenderer(format Format, output io.Writer, opts Options) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output, opts)
		}
		return NewRenderer(FormatText, output, opts)
	case FormatTerminal:
		return terminal.New(output, terminal.Options{
			Header:      opts.Header,
			LineNumbers: opts.LineNumbers,
			Highlight:   opts.Highlight,
		}), nil
	case FormatText:
		return text.New(output, text.Options{
			Header:      opts.Header,
			LineNumbers: opts.LineNumbers,
		}), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
