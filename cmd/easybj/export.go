package main

import (
	"context"
	"fmt"

	"github.com/lox/easybj/internal/report"
)

// ExportCmd writes the full result set as JSON
type ExportCmd struct {
	Out string `short:"o" required:"" type:"path" help:"Destination JSON file"`
}

func (c *ExportCmd) Run(ctx context.Context, g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	res, err := calculate(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if err := report.Export(c.Out, res); err != nil {
		return fmt.Errorf("exporting results: %w", err)
	}

	logger.Info("Exported results", "path", c.Out, "advantage", res.Advantage)
	return nil
}
