// Package paths provides centralized path handling for minigrep.
// It follows the XDG Base Directory specification for the user config
// file and the log file, with MINIGREP_* overrides for both.
package paths
