package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/easybj/internal/report"
	"github.com/lox/easybj/internal/tui"
)

// ViewCmd opens the pager over the selected results
type ViewCmd struct {
	Names []string `arg:"" optional:"" help:"Results to browse (default all)"`
}

func (c *ViewCmd) Run(ctx context.Context, g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	names, err := report.Select(c.Names)
	if err != nil {
		return err
	}

	res, err := calculate(ctx, cfg, logger)
	if err != nil {
		return err
	}

	var opts []report.StyledOption
	if g.NoColor {
		opts = append(opts, report.WithoutColor())
	}
	sections, err := report.Sections(report.NewStyled(cfg.Output.Precision, opts...), res, names)
	if err != nil {
		return err
	}
	return tui.Run(sections, logger, tea.WithContext(ctx))
}
