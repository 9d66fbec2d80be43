// Package types defines the core types and interfaces shared across
// minigrep: the filesystem abstraction used by the content loader and
// the Report/Match structures handed from the run loop to renderers.
package types
