// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/minigrep/pkg/types"
)

// Header and echo labels shared with the terminal renderer.
const (
	LabelSearching = "Searching for"
	LabelInFile    = "In file"
	LabelWithText  = "With text:"
)

// Options controls what the text renderer prints
type Options struct {
	Header      bool
	LineNumbers bool
}

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
	opts   Options
}

// New creates a new text renderer
func New(output io.Writer, opts Options) *Renderer {
	return &Renderer{output: output, opts: opts}
}

// Render prints the header and then the reported lines, or the raw
// content when the report is unfiltered.
func (r *Renderer) Render(report *types.Report) error {
	var b strings.Builder

	if r.opts.Header {
		fmt.Fprintf(&b, "%s %s\n", LabelSearching, report.Query)
		fmt.Fprintf(&b, "%s %s\n", LabelInFile, report.FilePath)
	}

	if !report.Filtered {
		b.WriteString(LabelWithText + "\n")
		if !r.opts.LineNumbers {
			b.WriteString(report.Content)
			if report.Content != "" && !strings.HasSuffix(report.Content, "\n") {
				b.WriteByte('\n')
			}
			_, err := io.WriteString(r.output, b.String())
			return err
		}
	}

	for _, m := range report.Matches {
		if r.opts.LineNumbers {
			fmt.Fprintf(&b, "%d:", m.Number)
		}
		b.WriteString(m.Text)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}
