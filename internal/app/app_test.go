package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/arcparse/internal/command"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		in        Config
		expected  *Config
		expectErr bool
	}{
		{
			name:     "defaults are filled in",
			in:       Config{Command: "header"},
			expected: &Config{Command: "header", LogFormat: "text", LogLevel: "warn"},
		},
		{
			name:     "empty command is allowed",
			in:       Config{},
			expected: &Config{LogFormat: "text", LogLevel: "warn"},
		},
		{
			name:     "explicit values are kept",
			in:       Config{Command: "players", LogFormat: "json", LogLevel: "debug"},
			expected: &Config{Command: "players", LogFormat: "json", LogLevel: "debug"},
		},
		{
			name:      "bad format",
			in:        Config{Command: "players", LogFormat: "yaml"},
			expectErr: true,
		},
		{
			name:      "bad level",
			in:        Config{Command: "players", LogLevel: "trace"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewConfig(tc.in)

			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, cfg); diff != "" {
				t.Errorf("Config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRun_PrintsVariantName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected string
	}{
		{input: "version", expected: "Version\n"},
		{input: "header", expected: "Header\n"},
		{input: "revision", expected: "Revision\n"},
		{input: "players", expected: "Players\n"},
		{input: "success", expected: "Success\n"},
		{input: "start_time", expected: "StartTime\n"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}
			logs := &bytes.Buffer{}
			a := NewApp(out, logs, &Config{Command: tc.input})

			// --- Act ---
			err := a.Run(context.Background())

			// --- Assert ---
			require.NoError(t, err)
			require.Equal(t, tc.expected, out.String())
			require.Empty(t, logs.String(), "nothing should be logged at the default level on success")
		})
	}
}

func TestRun_EmptyCommandIsInvalid(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	a := NewApp(out, &bytes.Buffer{}, &Config{Command: ""})

	err := a.Run(context.Background())

	require.ErrorIs(t, err, command.ErrInvalidCommand)
	require.Empty(t, out.String())
}

func TestRun_InvalidCommand(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	a := NewApp(out, logs, &Config{Command: "verison", LogFormat: "json"})

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.ErrorIs(t, err, command.ErrInvalidCommand)
	require.Empty(t, out.String(), "stdout must stay empty on failure")
	require.Contains(t, logs.String(), `"level":"WARN"`)
	require.Contains(t, logs.String(), `"suggestion":"version"`)
}

func TestRun_DebugLogging(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	a := NewApp(out, logs, &Config{Command: "players", LogLevel: "debug"})

	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, "Players\n", out.String())
	require.Contains(t, logs.String(), "Logger configured successfully.")
	require.Contains(t, logs.String(), "Configuration received.")
	require.Contains(t, logs.String(), "command=players")
	require.Contains(t, logs.String(), "Command resolved.")
	require.Contains(t, logs.String(), "command=Players")
}
