// SPDX-License-Identifier: EPL-2.0

// Package render turns a set of moving mono sources into one signal per
// loudspeaker.
//
// The timeline is cut into fixed blocks (512 samples unless WithBlockSize
// says otherwise). For every block each source's direction is resolved once
// at the block's start time, its samples for the block are panned into a
// per-channel accumulator, and the accumulator is committed to the output.
// Sources shorter than the render contribute silence past their end; the
// render is as long as the longest source.
//
// The engine knows nothing about speaker geometry. Gains come from a
// pan.Panner built once per render by a PannerFactory, VBAP by default:
//
//	out, err := render.Render(l, set, sources)
//
//	// nearest-speaker law on four goroutines
//	out, err = render.Render(l, set, sources,
//	    render.WithPanner(render.LawFactory(pan.LawNearest)),
//	    render.WithWorkers(4),
//	)
//
// Sources are visited in ascending id order within every block, so the
// result is identical from run to run and for any worker count.
package render
