// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/minigrep/pkg/types"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// document is the JSON shape of a report
type document struct {
	Query      string        `json:"query"`
	FilePath   string        `json:"file_path"`
	IgnoreCase bool          `json:"ignore_case"`
	Filtered   bool          `json:"filtered"`
	Count      int           `json:"count"`
	Matches    []types.Match `json:"matches"`
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// Render encodes the report as a single JSON document
func (r *Renderer) Render(report *types.Report) error {
	matches := report.Matches
	if matches == nil {
		matches = []types.Match{}
	}
	return r.encoder.Encode(document{
		Query:      report.Query,
		FilePath:   report.FilePath,
		IgnoreCase: report.IgnoreCase,
		Filtered:   report.Filtered,
		Count:      len(matches),
		Matches:    matches,
	})
}
