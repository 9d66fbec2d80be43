// Package help serves the topic pages shown by `minigrep --topic`.
//
// Topics are markdown files embedded in the binary. A file named
// option-<flag>.md documents a flag and can be requested as either
// "option-<flag>" or "--<flag>".
package help
