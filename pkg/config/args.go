package config

import (
	"github.com/arthur-debert/minigrep/pkg/errors"
)

// MsgNotEnoughArguments is the message carried by FromArgs failures.
const MsgNotEnoughArguments = "not enough arguments"

// Config is the resolved pair of query and file path.
type Config struct {
	Query    string
	FilePath string
}

// FromArgs builds a Config from a raw argument list whose first element
// is the program name. Tokens after the file path are ignored.
func FromArgs(tokens []string) (Config, error) {
	if len(tokens) < 3 {
		return Config{}, errors.New(errors.ErrInvalidArguments, MsgNotEnoughArguments).
			WithDetail("given", len(tokens))
	}
	return Config{
		Query:    tokens[1],
		FilePath: tokens[2],
	}, nil
}
