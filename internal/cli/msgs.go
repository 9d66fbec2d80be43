package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootUse   = "minigrep [flags] <query> <file_path>"
	MsgRootShort = "Search a file for lines containing a query"

	// Diagnostics, one line on stderr
	MsgProblemParsing = "Problem parsing arguments: %s"
	MsgProblemConfig  = "Problem loading configuration: %s"
	MsgAppError       = "Application error: %s"

	// Version output
	MsgVersionFormat = "minigrep version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagIgnoreCase  = "Match case-insensitively"
	MsgFlagLineNumbers = "Prefix each line with its line number"
	MsgFlagFormat      = "Output format: auto, term, text or json"
	MsgFlagNoHighlight = "Do not highlight matches in terminal output"
	MsgFlagNoFilter    = "Echo the whole file instead of the matching lines"
	MsgFlagNoHeader    = "Do not print the query and file path before the results"
	MsgFlagMaxFileSize = "Refuse files larger than this many bytes (0 means no limit)"
	MsgFlagConfig      = "Config file (default $XDG_CONFIG_HOME/minigrep/config.toml)"
	MsgFlagPrintConfig = "Print the effective settings as toml or yaml (or the built-in defaults with \"defaults\") and exit"
	MsgFlagTopic       = "Show a help topic (\"list\" lists them) and exit"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")
)
