// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/vbaprender/audio"
	"github.com/ik5/vbaprender/layout"
	"github.com/ik5/vbaprender/pan"
	"github.com/ik5/vbaprender/trajectory"
)

// Engine renders trajectory sets. It holds configuration only, so one
// Engine may run several renders at once.
type Engine struct {
	blockSize int
	workers   int
	panner    PannerFactory
	logger    *slog.Logger
}

// New returns an Engine with VBAP panning, 512-sample blocks and one worker.
func New(opts ...Option) *Engine {
	e := &Engine{
		blockSize: DefaultBlockSize,
		workers:   1,
		panner:    LawFactory(pan.LawVBAP),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render is shorthand for New(opts...).Render with a background context.
func Render(l layout.Layout, set *trajectory.Set, sources map[string]audio.Mono, opts ...Option) (*audio.Multichannel, error) {
	return New(opts...).Render(context.Background(), l, set, sources)
}

// job is the validated, immutable input of one render.
type job struct {
	id         string
	ids        []string
	set        *trajectory.Set
	sources    map[string]audio.Mono
	panner     pan.Panner
	asm        *assembler
	frames     int
	blocks     int
	blockSize  int
	sampleRate int
}

// Render pans every source of set onto l and returns one channel per
// speaker, in channel order, as long as the longest entry of sources.
//
// Every id in set must have an entry in sources at set.SampleRate. Extra
// entries are allowed and only count towards the output length. Any error
// aborts the render and no partial output is returned.
func (e *Engine) Render(ctx context.Context, l layout.Layout, set *trajectory.Set, sources map[string]audio.Mono) (*audio.Multichannel, error) {
	started := time.Now()

	j, err := e.prepare(l, set, sources)
	if err != nil {
		return nil, err
	}

	log := e.logger.With("render_id", j.id)
	log.Info("render: started",
		"sources", len(j.ids),
		"channels", l.Len(),
		"frames", j.frames,
		"sample_rate", j.sampleRate,
		"block_size", j.blockSize,
		"blocks", j.blocks,
		"workers", e.workers,
	)

	if err := e.run(ctx, log, j); err != nil {
		log.Error("render: failed", "error", err)
		return nil, err
	}

	out, err := j.asm.finish(l.Len())
	if err != nil {
		return nil, err
	}

	log.Info("render: finished",
		"duration", out.Duration(),
		"elapsed", time.Since(started),
	)
	return out, nil
}

func (e *Engine) prepare(l layout.Layout, set *trajectory.Set, sources map[string]audio.Mono) (*job, error) {
	if e.blockSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, e.blockSize)
	}
	if set == nil {
		return nil, trajectory.ErrNoSources
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("trajectories: %w", err)
	}

	ids := set.IDs()
	for _, id := range ids {
		if _, ok := sources[id]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingSource, id)
		}
	}

	frames := 0
	for id, src := range sources {
		if src.SampleRate != set.SampleRate {
			return nil, fmt.Errorf("source %q at %d Hz, set at %d Hz: %w",
				id, src.SampleRate, set.SampleRate, ErrSampleRateMismatch)
		}
		frames = max(frames, src.Len())
	}

	panner, err := e.panner(l)
	if err != nil {
		return nil, fmt.Errorf("building panner: %w", err)
	}
	if panner.Channels() != l.Len() {
		return nil, fmt.Errorf("%w: panner has %d, layout has %d",
			ErrPannerChannels, panner.Channels(), l.Len())
	}

	return &job{
		id:         uuid.New().String(),
		ids:        ids,
		set:        set,
		sources:    sources,
		panner:     panner,
		asm:        newAssembler(set.SampleRate, l.Len(), frames),
		frames:     frames,
		blocks:     (frames + e.blockSize - 1) / e.blockSize,
		blockSize:  e.blockSize,
		sampleRate: set.SampleRate,
	}, nil
}

// run renders all blocks, splitting them into contiguous ranges when more
// than one worker is configured.
func (e *Engine) run(ctx context.Context, log *slog.Logger, j *job) error {
	channels := j.panner.Channels()
	workers := min(max(e.workers, 1), max(j.blocks, 1))

	if workers == 1 {
		return e.renderRange(ctx, log, j, newAccumulator(channels, j.blockSize), 0, j.blocks)
	}

	g, ctx := errgroup.WithContext(ctx)
	per := (j.blocks + workers - 1) / workers
	for w := range workers {
		first, last := w*per, min((w+1)*per, j.blocks)
		if first >= last {
			break
		}
		wlog := log.With("worker", w)
		g.Go(func() error {
			return e.renderRange(ctx, wlog, j, newAccumulator(channels, j.blockSize), first, last)
		})
	}
	return g.Wait()
}

// renderRange renders blocks [first, last).
func (e *Engine) renderRange(ctx context.Context, log *slog.Logger, j *job, acc *accumulator, first, last int) error {
	for b := first; b < last; b++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("render cancelled at block %d: %w", b, err)
		}
		if err := j.renderBlock(acc, b); err != nil {
			return err
		}
		if done := b - first + 1; done%progressEvery == 0 {
			log.Debug("render: progress",
				"block", b,
				"done", done,
				"of", last-first,
			)
		}
	}
	return nil
}

// renderBlock accumulates every source for block b and commits it.
func (j *job) renderBlock(acc *accumulator, b int) error {
	start := b * j.blockSize
	n := min(j.blockSize, j.frames-start)
	at := float64(start) / float64(j.sampleRate)

	out := acc.reset(n)
	for _, id := range j.ids {
		dir, err := j.set.Sources[id].DirectionAt(at)
		if err != nil {
			return fmt.Errorf("source %q at %.6fs: %w", id, at, err)
		}

		block := acc.extract(j.sources[id].Samples, start, n)
		if err := j.panner.Apply(dir, block, out); err != nil {
			return fmt.Errorf("source %q at %.6fs: %w", id, at, err)
		}
	}

	j.asm.commit(start, out)
	return nil
}
