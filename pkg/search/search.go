// Package search selects the lines of a text that contain a query.
package search

import (
	"strings"

	"github.com/arthur-debert/minigrep/pkg/types"
)

// Search returns the lines of contents containing query, matched
// case-sensitively as a literal substring, in their original order.
func Search(query, contents string) []types.Match {
	return filter(contents, buildMatcher(query, false))
}

// SearchCaseInsensitive is Search with both sides lowercased first.
func SearchCaseInsensitive(query, contents string) []types.Match {
	return filter(contents, buildMatcher(query, true))
}

// Find dispatches to Search or SearchCaseInsensitive.
func Find(query, contents string, ignoreCase bool) []types.Match {
	return filter(contents, buildMatcher(query, ignoreCase))
}

// Lines returns every line of contents, numbered.
func Lines(contents string) []types.Match {
	return filter(contents, func(string) bool { return true })
}

func filter(contents string, matcher func(string) bool) []types.Match {
	var results []types.Match
	for i, line := range splitLines(contents) {
		if matcher(line) {
			results = append(results, types.Match{Number: i + 1, Text: line})
		}
	}
	return results
}

func buildMatcher(query string, ignoreCase bool) func(string) bool {
	if !ignoreCase {
		return func(line string) bool {
			return strings.Contains(line, query)
		}
	}
	pattern := strings.ToLower(query)
	return func(line string) bool {
		return strings.Contains(strings.ToLower(line), pattern)
	}
}

// splitLines splits on \n, drops a trailing \r from each line and does
// not yield an empty line after a final newline.
func splitLines(contents string) []string {
	if contents == "" {
		return nil
	}
	lines := strings.Split(contents, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
