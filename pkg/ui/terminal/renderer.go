// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/minigrep/pkg/style"
	"github.com/arthur-debert/minigrep/pkg/types"
	"github.com/arthur-debert/minigrep/pkg/ui/text"
)

// Options controls what the terminal renderer prints
type Options struct {
	Header      bool
	LineNumbers bool
	Highlight   bool
}

// Renderer provides styled output for interactive terminals
type Renderer struct {
	output io.Writer
	opts   Options
}

// New creates a new terminal renderer
func New(w io.Writer, opts Options) *Renderer {
	return &Renderer{output: w, opts: opts}
}

// Render prints a styled header, the lines with matches highlighted and
// a summary footer.
func (r *Renderer) Render(report *types.Report) error {
	var b strings.Builder

	if r.opts.Header {
		b.WriteString(style.LabelStyle.Render(text.LabelSearching) + " " + style.QueryStyle.Render(report.Query) + "\n")
		b.WriteString(style.LabelStyle.Render(text.LabelInFile) + " " + style.PathStyle.Render(report.FilePath) + "\n")
	}

	if !report.Filtered {
		b.WriteString(style.LabelStyle.Render(text.LabelWithText) + "\n")
	}

	width := len(strconv.Itoa(lastLine(report)))
	var hl *style.Highlighter
	if r.opts.Highlight && report.Filtered {
		hl = style.NewHighlighter(report.Query, report.IgnoreCase, style.MatchStyle.Render)
	}
	for _, m := range report.Matches {
		if r.opts.LineNumbers {
			b.WriteString(style.LineNumberStyle.Render(fmt.Sprintf("%*d", width, m.Number)) + " ")
		}
		line := m.Text
		if hl != nil {
			line = hl.Line(line)
		}
		b.WriteString(line + "\n")
	}

	if report.Filtered {
		b.WriteString(footer(report) + "\n")
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func footer(report *types.Report) string {
	if report.Empty() {
		return style.MutedStyle.Render("No lines matched")
	}
	switch count := report.Count(); count {
	case 1:
		return pterm.FgGray.Sprint("1 matching line")
	default:
		return pterm.FgGray.Sprintf("%d matching lines", count)
	}
}

func lastLine(report *types.Report) int {
	if n := len(report.Matches); n > 0 {
		return report.Matches[n-1].Number
	}
	return 0
}
