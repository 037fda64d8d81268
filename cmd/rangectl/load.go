package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/joshuapare/rangekit/internal/almanac"
	"github.com/joshuapare/rangekit/internal/logger"
	"github.com/joshuapare/rangekit/internal/mmfile"
	"github.com/joshuapare/rangekit/remap/pipeline"
	"github.com/joshuapare/rangekit/remap/printer"
	"github.com/joshuapare/rangekit/remap/span"
)

// loadAlmanac parses the almanac at path and builds its pipeline.
func loadAlmanac(path string) (*almanac.Almanac, *pipeline.Pipeline, error) {
	printVerbose("Opening almanac: %s\n", path)

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open almanac: %w", err)
	}
	defer cleanup()

	a, err := almanac.ParseBytes(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Strict {
		if err := a.CheckChain(); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	p, err := a.Pipeline(pipeline.WithOrder(cfg.PipelineOrder()))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("almanac loaded",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
		zap.Int("seeds", len(a.Seeds)),
		zap.Int("stages", p.Len()),
		zap.Stringer("order", p.Order()))
	return a, p, nil
}

// runRanges pushes ranges through p, in parallel when more than one worker is
// configured.
func runRanges(ctx context.Context, p *pipeline.Pipeline, ranges []span.Range) ([]span.Range, error) {
	began := time.Now()
	var (
		out []span.Range
		err error
	)
	if cfg.Workers > 1 && len(ranges) > 1 {
		out, err = p.RunParallel(ctx, ranges, cfg.Workers)
	} else {
		out = p.Run(ranges)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("ranges mapped",
		zap.Int("inputs", len(ranges)),
		zap.Int("outputs", len(out)),
		zap.Int("workers", cfg.Workers),
		zap.Duration("elapsed", time.Since(began)))
	return out, nil
}

// newPrinter returns a stdout printer honoring --json and the group setting.
func newPrinter(adjust ...func(*printer.Options)) *printer.Printer {
	opts := printer.DefaultOptions()
	opts.Group = cfg.Group
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	for _, fn := range adjust {
		fn(&opts)
	}
	return printer.New(os.Stdout, opts)
}
