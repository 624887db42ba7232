// SPDX-License-Identifier: EPL-2.0

package pan

import (
	"fmt"

	"github.com/ik5/vbaprender/geom"
	"github.com/ik5/vbaprender/layout"
)

// Nearest sends the whole signal to the speaker closest in angle to the
// direction. Ties go to the lowest channel.
type Nearest struct {
	speakers []geom.Vec3
}

func NewNearest(l layout.Layout) (*Nearest, error) {
	vecs, err := speakerVectors(l)
	if err != nil {
		return nil, err
	}
	return &Nearest{speakers: vecs}, nil
}

func (n *Nearest) Channels() int { return len(n.speakers) }

// Closest returns the channel nearest to dir.
func (n *Nearest) Closest(dir geom.Vec3) (int, error) {
	p, ok := dir.Normalize()
	if !ok {
		return 0, fmt.Errorf("direction %v: %w", dir, ErrNoSpeakerSet)
	}
	best, bestDot := 0, p.Dot(n.speakers[0])
	for i := 1; i < len(n.speakers); i++ {
		if d := p.Dot(n.speakers[i]); d > bestDot {
			best, bestDot = i, d
		}
	}
	return best, nil
}

func (n *Nearest) Apply(dir geom.Vec3, block []float32, out [][]float32) error {
	if err := checkOut(len(n.speakers), out, len(block)); err != nil {
		return err
	}
	ch, err := n.Closest(dir)
	if err != nil {
		return err
	}
	mix(out[ch], block, 1)
	return nil
}
