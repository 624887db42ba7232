// SPDX-License-Identifier: EPL-2.0

// Command vbaprender renders the sources of a spatial instruction file onto
// a speaker layout and writes one output channel per speaker.
//
//	vbaprender -layout layout.json -positions spatial.json -sources stems -out render.wav
//
// A YAML job file given with -config supplies defaults; flags set on the
// command line override it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/vbaprender"
	"github.com/ik5/vbaprender/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	cfg, verbose, err := parse(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "vbaprender: %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	res, err := vbaprender.RenderJob(ctx, cfg, logger)
	if err != nil {
		logger.Error("vbaprender: render failed", "error", err)
		return 1
	}

	rep := res.Meter
	if rep.AllSilent() {
		logger.Warn("vbaprender: output is silent", "output", res.Path)
	} else if len(rep.Silent) > 0 {
		logger.Warn("vbaprender: silent channels", "channels", rep.Silent)
	}
	if rep.Clipped > 0 {
		logger.Warn("vbaprender: samples clipped", "count", rep.Clipped)
	}
	logger.Info("vbaprender: levels",
		"max_db", rep.MaxDB,
		"min_db", rep.MinDB,
		"mean_db", rep.MeanDB,
	)
	return 0
}

// parse builds the job from an optional -config file and the flags set on
// the command line, in that order.
func parse(args []string, stderr io.Writer) (*config.Config, bool, error) {
	def := config.Default()

	fs := flag.NewFlagSet("vbaprender", flag.ContinueOnError)
	fs.SetOutput(stderr)

	jobFile := fs.String("config", "", "YAML job file")
	layout := fs.String("layout", "", "speaker layout file (.json, .yaml)")
	positions := fs.String("positions", "", "spatial instruction file (.json, .yaml)")
	sources := fs.String("sources", "", "folder with one <id>.<ext> file per source")
	out := fs.String("out", "", "output file (.wav, .aif, .aiff)")
	report := fs.String("report", "", "write the meter report to this YAML file")
	block := fs.Int("block", def.BlockSize, "samples per direction update")
	bits := fs.Int("bits", def.BitDepth, "output bit depth: 16, 24 or 32")
	workers := fs.Int("workers", def.Workers, "render goroutines, 0 for one per CPU")
	conform := fs.Bool("conform", def.Conform, "downmix and resample sources instead of rejecting them")
	panner := fs.String("panner", def.Panner, "panning law: vbap or nearest")
	window := fs.Float64("meter-window", def.MeterWindowS, "meter window in seconds")
	verbose := fs.Bool("v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}
	if fs.NArg() > 0 {
		return nil, false, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := &def
	if *jobFile != "" {
		loaded, err := config.Read(*jobFile)
		if err != nil {
			return nil, false, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "layout":
			cfg.Layout = *layout
		case "positions":
			cfg.Positions = *positions
		case "sources":
			cfg.Sources = *sources
		case "out":
			cfg.Output = *out
		case "report":
			cfg.Report = *report
		case "block":
			cfg.BlockSize = *block
		case "bits":
			cfg.BitDepth = *bits
		case "workers":
			cfg.Workers = *workers
		case "conform":
			cfg.Conform = *conform
		case "panner":
			cfg.Panner = *panner
		case "meter-window":
			cfg.MeterWindowS = *window
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return cfg, *verbose, nil
}
