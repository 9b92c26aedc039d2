package main

import (
	"context"
	"errors"

	"github.com/lox/easybj/internal/report"
)

// TablesCmd prints the selected results
type TablesCmd struct {
	Names     []string `arg:"" optional:"" help:"Results to print: initial, dealer, stand, hit, double, split, optimal, strategy, advantage, resplit (default all)"`
	Format    string   `short:"f" enum:",text,styled,json" default:"" help:"Output format (overrides config)"`
	Precision int      `short:"p" help:"Decimal places for EV columns (overrides config)"`
}

func (c *TablesCmd) Run(ctx context.Context, g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	if c.Format != "" {
		cfg.Output.Format = c.Format
	}
	if c.Precision > 0 {
		cfg.Output.Precision = c.Precision
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Unknown names are reported after the known ones are printed.
	names, selectErr := report.Select(c.Names)
	var notFound *report.NotFoundError
	if selectErr != nil && !errors.As(selectErr, &notFound) {
		return selectErr
	}

	var opts []report.StyledOption
	if g.NoColor {
		opts = append(opts, report.WithoutColor())
	}
	renderer, err := report.New(cfg.Output.Format, cfg.Output.Precision, opts...)
	if err != nil {
		return err
	}

	if len(names) > 0 {
		res, err := calculate(ctx, cfg, logger)
		if err != nil {
			return err
		}
		if err := renderer.Render(g.Stdout, res, names); err != nil {
			return err
		}
	}
	return selectErr
}
