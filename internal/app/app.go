package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/arcparse/internal/command"
	"github.com/vk/arcparse/internal/ctxlog"
)

// App encapsulates the dependencies and configuration of one invocation.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp returns an App that prints results to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)
	logger.Debug("Configuration received.", "command", cfg.Command)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Run classifies the configured command and writes its variant name as a
// single line.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	c, err := classify(ctx, a.config.Command)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(a.outW, c); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func classify(ctx context.Context, input string) (command.Command, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Classifying command.", "input", input)

	c, err := command.Parse(input)
	if err != nil {
		var perr *command.ParseError
		if errors.As(err, &perr) && perr.Suggestion != "" {
			logger.Warn("Unrecognized command.", "input", input, "suggestion", perr.Suggestion)
		} else {
			logger.Warn("Unrecognized command.", "input", input)
		}
		return command.Unknown, err
	}

	logger.Debug("Command resolved.", "command", c.String())
	return c, nil
}
