package style

import (
	"regexp"
)

// Highlighter marks occurrences of one query. The pattern is compiled
// once, so a single Highlighter serves every line of a report.
type Highlighter struct {
	re   *regexp.Regexp
	mark func(...string) string
}

// NewHighlighter builds a Highlighter for query. An empty query yields a
// Highlighter that returns lines unchanged.
func NewHighlighter(query string, ignoreCase bool, mark func(...string) string) *Highlighter {
	h := &Highlighter{mark: mark}
	if query == "" {
		return h
	}
	expr := regexp.QuoteMeta(query)
	if ignoreCase {
		expr = "(?i)" + expr
	}
	h.re = regexp.MustCompile(expr)
	return h
}

// Line wraps each non-overlapping occurrence of the query in line with
// the mark function. Text between occurrences is left untouched.
func (h *Highlighter) Line(line string) string {
	if h.re == nil || line == "" {
		return line
	}
	return h.re.ReplaceAllStringFunc(line, func(m string) string {
		return h.mark(m)
	})
}
