// Package app wires a validated Config to a logger and runs a single
// classification: resolve the requested command and print its variant name.
package app
