package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/easybj/internal/config"
	"github.com/lox/easybj/internal/easybj"
)

// load reads the configuration, applies flag overrides and builds the logger
func (g *Globals) load() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(g.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})

	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		logger.SetColorProfile(termenv.Ascii)
	}

	logger.Debug("Loaded configuration",
		"path", g.Config,
		"surrender", *cfg.Rules.Surrender,
		"format", cfg.Output.Format)
	return cfg, logger, nil
}

// calculate runs the engine with the configured rules
func calculate(ctx context.Context, cfg *config.Config, logger *log.Logger) (*easybj.Result, error) {
	calc, err := easybj.NewCalculator(
		easybj.WithRules(cfg.EngineRules()),
		easybj.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	return calc.Calculate(ctx)
}
