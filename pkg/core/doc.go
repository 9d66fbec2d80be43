// Package core runs one search from start to finish.
//
// The flow is strictly linear:
//
//	Start -> ConfigResolved -> ContentLoaded -> Reported
//
// Argument resolution happens before any file access, so a bad
// invocation never touches the filesystem. A load failure ends the run
// after the config has been resolved. Rendering the returned report is
// left to the caller.
package core
