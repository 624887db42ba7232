// SPDX-License-Identifier: EPL-2.0

package render

import (
	"math"

	"github.com/ik5/vbaprender/geom"
	"github.com/ik5/vbaprender/layout"
	"github.com/ik5/vbaprender/pan"
	"github.com/ik5/vbaprender/trajectory"
)

// axisPanner routes |dir.X|, |dir.Y| and |dir.Z| of every sample to
// channels 0, 1 and 2. It is linear and independent of any layout.
type axisPanner struct{}

func (axisPanner) Channels() int { return 3 }

func (axisPanner) Apply(dir geom.Vec3, block []float32, out [][]float32) error {
	gains := [3]float32{float32(math.Abs(dir.X)), float32(math.Abs(dir.Y)), float32(math.Abs(dir.Z))}
	for c, g := range gains {
		for i, s := range block {
			out[c][i] += g * s
		}
	}
	return nil
}

func axisFactory(layout.Layout) (pan.Panner, error) { return axisPanner{}, nil }

// recordingPanner remembers the direction and length of every Apply call.
type recordingPanner struct {
	dirs  []geom.Vec3
	sizes []int
}

func (r *recordingPanner) Channels() int { return 3 }

func (r *recordingPanner) Apply(dir geom.Vec3, block []float32, _ [][]float32) error {
	r.dirs = append(r.dirs, dir)
	r.sizes = append(r.sizes, len(block))
	return nil
}

// threeChannels is a layout shaped for axisPanner.
func threeChannels() layout.Layout {
	return layout.Layout{
		Unit: geom.Degrees,
		Speakers: []layout.Speaker{
			{Azimuth: 0, Channel: 0},
			{Azimuth: 90, Channel: 1},
			{Elevation: 90, Channel: 2},
		},
	}
}

func fixed(dir geom.Vec3) trajectory.Trajectory {
	return trajectory.Trajectory{{Time: 0, Dir: dir}}
}

func sweep(from, to geom.Vec3, seconds float64) trajectory.Trajectory {
	return trajectory.Trajectory{{Time: 0, Dir: from}, {Time: seconds, Dir: to}}
}

var (
	xAxis = geom.Vec3{X: 1}
	yAxis = geom.Vec3{Y: 1}
	zAxis = geom.Vec3{Z: 1}
)
