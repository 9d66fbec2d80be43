package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	fileMu      sync.Mutex
	logFile     *os.File  // the open log file, if any
	consoleOnly io.Writer // the console writer without the file
)

// SetupLogger configures the global logger based on verbosity.
// Records go to console (pretty printed) and, when logPath is not empty,
// are appended to logPath as JSON. A log file from an earlier call is
// closed.
func SetupLogger(verbosity int, console io.Writer, logPath string) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	if console == nil {
		console = os.Stderr
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    false,
	}

	writers := []io.Writer{consoleWriter}

	var (
		handle  *os.File
		fileErr error
	)
	if logPath != "" {
		handle, fileErr = setupLogFile(logPath)
		if fileErr == nil {
			writers = append(writers, handle)
		}
	}

	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()
	swapLogFile(handle, consoleWriter)

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logPath).Msg("Failed to create log file, logging to console only")
	}

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", logPath).Msg("Logger initialized")
}

// Close closes the log file opened by SetupLogger, if any. Records are
// still written to the console afterwards.
func Close() error {
	fileMu.Lock()
	defer fileMu.Unlock()
	if logFile == nil {
		return nil
	}
	log.Logger = log.Logger.Output(consoleOnly)
	err := logFile.Close()
	logFile = nil
	return err
}

// swapLogFile records handle as the open log file and closes the
// previous one. Callers swap log.Logger first so nothing writes to the
// closed file.
func swapLogFile(handle *os.File, console io.Writer) {
	fileMu.Lock()
	defer fileMu.Unlock()
	consoleOnly = console
	if logFile != nil && logFile != handle {
		_ = logFile.Close()
	}
	logFile = handle
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// WithFields returns a logger with additional fields
func WithFields(fields map[string]interface{}) zerolog.Logger {
	logger := log.Logger
	for k, v := range fields {
		logger = logger.With().Interface(k, v).Logger()
	}
	return logger
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
