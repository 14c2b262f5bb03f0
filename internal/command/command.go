package command

import (
	"errors"
	"fmt"
)

// Command is one of the fixed instructions arcparse recognizes.
type Command int

const (
	// Unknown is the zero value. Parse never returns it without an error.
	Unknown Command = iota
	Version
	Header
	Revision
	Players
	Success
	StartTime
)

// ErrInvalidCommand is matched by every error Parse returns.
var ErrInvalidCommand = errors.New("invalid command type")

// ordered holds every valid command in declaration order.
var ordered = []Command{Version, Header, Revision, Players, Success, StartTime}

var names = map[Command]string{
	Version:   "version",
	Header:    "header",
	Revision:  "revision",
	Players:   "players",
	Success:   "success",
	StartTime: "start_time",
}

var variants = map[Command]string{
	Version:   "Version",
	Header:    "Header",
	Revision:  "Revision",
	Players:   "Players",
	Success:   "Success",
	StartTime: "StartTime",
}

// byName is the reverse of names, built once at init and never written again.
var byName = func() map[string]Command {
	m := make(map[string]Command, len(names))
	for c, n := range names {
		m[n] = c
	}
	return m
}()

// String returns the variant name, e.g. "StartTime".
func (c Command) String() string {
	if v, ok := variants[c]; ok {
		return v
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Name returns the spelling accepted on the command line, e.g. "start_time".
// It is empty for Unknown and out-of-range values.
func (c Command) Name() string {
	return names[c]
}

// Valid reports whether c is one of the recognized commands.
func (c Command) Valid() bool {
	_, ok := names[c]
	return ok
}

// All returns the recognized commands in declaration order.
func All() []Command {
	return append([]Command(nil), ordered...)
}

// Names returns the accepted spellings in declaration order.
func Names() []string {
	out := make([]string, 0, len(ordered))
	for _, c := range ordered {
		out = append(out, names[c])
	}
	return out
}

// ParseError is returned by Parse when the input is not a known spelling.
type ParseError struct {
	Input      string
	Suggestion string
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s %q; did you mean %q?", ErrInvalidCommand, e.Input, e.Suggestion)
	}
	return fmt.Sprintf("%s %q", ErrInvalidCommand, e.Input)
}

// Is makes errors.Is(err, ErrInvalidCommand) hold for any *ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidCommand
}

// Parse maps s to its Command. Matching is exact: no case folding and no
// trimming.
func Parse(s string) (Command, error) {
	if c, ok := byName[s]; ok {
		return c, nil
	}
	perr := &ParseError{Input: s}
	if suggestion, ok := Suggest(s); ok {
		perr.Suggestion = suggestion
	}
	return Unknown, perr
}
