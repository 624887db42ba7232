// SPDX-License-Identifier: EPL-2.0

package vbaprender

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ik5/vbaprender/audio"
	"github.com/ik5/vbaprender/config"
	"github.com/ik5/vbaprender/layout"
	"github.com/ik5/vbaprender/meter"
	"github.com/ik5/vbaprender/render"
	"github.com/ik5/vbaprender/scene"
	"github.com/ik5/vbaprender/sources"
	"github.com/ik5/vbaprender/trajectory"
)

// Result is what RenderJob produced.
type Result struct {
	Path   string // written output file
	Layout layout.Layout
	Set    *trajectory.Set
	Output *audio.Multichannel
	Meter  *meter.Report
}

// RenderJob loads the layout, trajectories and sources named by cfg, renders
// them, writes the output file and measures it. When cfg.Report is set the
// meter report is written there as YAML.
//
// Nothing is written when any step before the output fails.
func RenderJob(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	started := time.Now()

	l, err := scene.LoadLayout(openDir(cfg.Layout))
	if err != nil {
		return nil, fmt.Errorf("loading layout: %w", err)
	}
	set, err := scene.LoadPositions(openDir(cfg.Positions))
	if err != nil {
		return nil, fmt.Errorf("loading positions: %w", err)
	}
	logger.Info("job: scene loaded",
		"speakers", l.Len(),
		"device_channels", l.DeviceMap(),
		"sources", len(set.Sources),
		"sample_rate", set.SampleRate,
		"duration_s", set.Duration(),
	)

	loader := sources.NewLoader(os.DirFS(cfg.Sources),
		sources.WithConform(cfg.Conform),
		sources.WithLogger(logger),
	)
	signals, err := loader.Load(set)
	if err != nil {
		return nil, fmt.Errorf("loading sources: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	engine := render.New(
		render.WithBlockSize(cfg.BlockSize),
		render.WithPanner(render.LawFactory(cfg.Panner)),
		render.WithWorkers(workers),
		render.WithLogger(logger),
	)
	out, err := engine.Render(ctx, l, set, signals)
	if err != nil {
		return nil, err
	}

	if err := WriteFile(cfg.Output, out, cfg.BitDepth); err != nil {
		return nil, err
	}

	rep, err := meter.Analyze(out, cfg.MeterWindow())
	if err != nil {
		return nil, fmt.Errorf("metering output: %w", err)
	}
	if cfg.Report != "" {
		if err := writeReport(cfg.Report, rep); err != nil {
			return nil, err
		}
	}

	logger.Info("job: finished",
		"output", cfg.Output,
		"channels", out.NumChannels(),
		"frames", out.Frames(),
		"bit_depth", cfg.BitDepth,
		"max_db", rep.MaxDB,
		"elapsed", time.Since(started),
	)

	return &Result{
		Path:   cfg.Output,
		Layout: l,
		Set:    set,
		Output: out,
		Meter:  rep,
	}, nil
}

// openDir splits path into a file system rooted at its directory and the
// base name inside it.
func openDir(path string) (fs.FS, string) {
	return os.DirFS(filepath.Dir(path)), filepath.Base(path)
}

func writeReport(path string, rep *meter.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating meter report: %w", err)
	}
	if err := rep.WriteYAML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
