package types

// Match is a single reported line.
type Match struct {
	Number int    `json:"line"` // 1-based
	Text   string `json:"text"`
}

// Report is the outcome of one search run, handed to a renderer.
type Report struct {
	Query      string
	FilePath   string
	IgnoreCase bool
	Filtered   bool // false when the content is echoed as-is
	Content    string
	Matches    []Match
}

// Count returns the number of reported lines.
func (r *Report) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Matches)
}

// Empty reports whether a filtered search found nothing.
func (r *Report) Empty() bool {
	return r.Filtered && r.Count() == 0
}
