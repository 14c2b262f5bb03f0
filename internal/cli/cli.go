package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/arcparse/internal/app"
	"github.com/vk/arcparse/internal/command"
)

// ErrMissingArgument is wrapped by the ExitError returned when no command is given.
var ErrMissingArgument = errors.New("not enough command line arguments specified")

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Parse processes command-line arguments and returns a populated Config or an
// ExitError.
//
// args[0] is always the command and is taken literally, even when it looks
// like a flag ("-h", "--"). Options are only read from the arguments that
// follow it. Parsing stops at the first non-flag; anything left over is
// ignored. Usage and flag diagnostics are written to diag.
func Parse(args []string, diag io.Writer) (*app.Config, error) {
	if len(args) < 1 {
		return nil, &ExitError{Code: 1, Message: ErrMissingArgument.Error(), Err: ErrMissingArgument}
	}

	flagSet := flag.NewFlagSet("arcparse", flag.ContinueOnError)
	flagSet.SetOutput(diag)

	flagSet.Usage = func() {
		fmt.Fprintf(diag, `
arcparse - classify an arcdps log query.

Usage:
  arcparse <command> [options]

Commands:
  %s

Options:
`, strings.Join(command.Names(), ", "))
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	// A trailing -h has already printed usage to diag; the command is still
	// classified so stdout keeps its single result line.
	if err := flagSet.Parse(args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		return nil, &ExitError{Code: 2, Message: err.Error(), Err: err}
	}

	config, err := app.NewConfig(app.Config{
		Command:   args[0],
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error(), Err: err}
	}
	return config, nil
}
