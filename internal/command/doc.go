// Package command classifies the command-line instruction names understood
// by arcparse. The set of commands is closed: Parse maps an exact,
// case-sensitive spelling to its Command and rejects everything else.
package command
