// SPDX-License-Identifier: EPL-2.0

package pan

import (
	"fmt"
	"math"
	"strings"

	"github.com/ik5/vbaprender/geom"
	"github.com/ik5/vbaprender/layout"
)

// Panner distributes a mono block over speaker channels.
//
// Apply must add into out (indexed by dense channel) and must not keep
// state between calls, so one Panner can serve several goroutines.
type Panner interface {
	Channels() int
	Apply(dir geom.Vec3, block []float32, out [][]float32) error
}

// Law names accepted by New.
const (
	LawVBAP    = "vbap"
	LawNearest = "nearest"
)

// New builds the panning law called name over l.
func New(name string, l layout.Layout) (Panner, error) {
	switch strings.ToLower(name) {
	case "", LawVBAP:
		return NewVBAP(l)
	case LawNearest:
		return NewNearest(l)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLaw, name)
	}
}

// speakerVectors converts the layout to unit vectors indexed by channel.
// This is the only place where the layout's angle unit is interpreted.
func speakerVectors(l layout.Layout) ([]geom.Vec3, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	const slack = 1e-9
	ordered := l.Ordered()
	vecs := make([]geom.Vec3, len(ordered))
	for i, s := range ordered {
		az := l.Unit.ToRadians(s.Azimuth)
		el := l.Unit.ToRadians(s.Elevation)
		if math.Abs(az) > 2*math.Pi+slack || math.Abs(el) > math.Pi/2+slack {
			return nil, fmt.Errorf("speaker on channel %d (az=%g, el=%g %s): %w",
				i, s.Azimuth, s.Elevation, l.Unit, ErrAngleRange)
		}
		vecs[i] = geom.FromSpherical(az, el)
	}
	return vecs, nil
}

// checkOut verifies the output buffers can take a block of n samples.
func checkOut(channels int, out [][]float32, n int) error {
	if len(out) != channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, len(out), channels)
	}
	for c := range out {
		if len(out[c]) < n {
			return fmt.Errorf("channel %d has %d samples for a %d sample block: %w",
				c, len(out[c]), n, ErrBlockTooLong)
		}
	}
	return nil
}

// mix adds g * block into dst.
func mix(dst []float32, block []float32, g float32) {
	dst = dst[:len(block)]
	for i, s := range block {
		dst[i] += g * s
	}
}
