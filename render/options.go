// SPDX-License-Identifier: EPL-2.0

package render

import (
	"log/slog"

	"github.com/ik5/vbaprender/layout"
	"github.com/ik5/vbaprender/pan"
)

// DefaultBlockSize is the number of samples sharing one direction lookup.
const DefaultBlockSize = 512

// progressEvery is how many blocks pass between progress log lines.
const progressEvery = 1000

// PannerFactory builds the panning law for a render from the full layout.
type PannerFactory func(layout.Layout) (pan.Panner, error)

// LawFactory returns a PannerFactory for one of the pan.Law* names.
func LawFactory(law string) PannerFactory {
	return func(l layout.Layout) (pan.Panner, error) {
		return pan.New(law, l)
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithBlockSize sets the block length in samples. Values below 1 make
// Render fail with ErrInvalidBlockSize.
func WithBlockSize(n int) Option {
	return func(e *Engine) { e.blockSize = n }
}

// WithPanner replaces the default VBAP factory.
func WithPanner(f PannerFactory) Option {
	return func(e *Engine) {
		if f != nil {
			e.panner = f
		}
	}
}

// WithLogger sets the logger for progress and summaries.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithWorkers spreads blocks over n goroutines. n <= 1 renders on the
// calling goroutine.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}
