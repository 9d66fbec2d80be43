package cli

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/arthur-debert/minigrep/pkg/errors"
	"github.com/arthur-debert/minigrep/pkg/filesystem"
	"github.com/arthur-debert/minigrep/pkg/logging"
	"github.com/arthur-debert/minigrep/pkg/types"
)

// Exit codes returned by Execute
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Execute runs minigrep with a full argument list (program name first)
// and returns the process exit code. Failures print exactly one line on
// stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	return ExecuteFS(args, stdout, stderr, filesystem.NewOS())
}

// ExecuteFS is Execute reading the searched file from fsys.
func ExecuteFS(args []string, stdout, stderr io.Writer, fsys types.FS) int {
	programName := "minigrep"
	rest := []string{}
	if len(args) > 0 {
		programName = args[0]
		rest = args[1:]
	}

	defer func() { _ = logging.Close() }()

	rootCmd := NewRootCmd(programName, fsys)
	rootCmd.SetArgs(rest)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, Diagnostic(err))
		return ExitFailure
	}
	return ExitOK
}

// Diagnostic turns an error into the one-line message shown to the user.
func Diagnostic(err error) string {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		return fmt.Sprintf(MsgAppError, err)
	}

	switch e.Code {
	case errors.ErrInvalidArguments:
		return fmt.Sprintf(MsgProblemParsing, e.Message)
	case errors.ErrConfigLoad, errors.ErrConfigParse, errors.ErrConfigValid:
		return fmt.Sprintf(MsgProblemConfig, e.Describe())
	default:
		return fmt.Sprintf(MsgAppError, e.Describe())
	}
}
