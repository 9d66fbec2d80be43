// Package testutil provides utilities for testing minigrep components.
//
// Key components:
//   - TestEnvironment: isolates the config directory, log directory and
//     MINIGREP_* variables, and holds the filesystem searched files live in
//   - CountingFS: a types.FS wrapper that records every access
//
// Most tests should use EnvMemoryOnly. EnvIsolated writes to a temp
// directory and is for code that reads through the OS filesystem.
package testutil
