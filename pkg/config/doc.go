// Package config resolves what a minigrep run operates on.
//
// Two concerns live here. Config is the (query, file path) pair taken
// from the positional arguments; it is built once per invocation by
// FromArgs and never changes. Settings are the matching and output
// options, layered from embedded defaults, the user's config file,
// MINIGREP_* environment variables and command-line flags.
package config
