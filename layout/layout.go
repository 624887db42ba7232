// SPDX-License-Identifier: EPL-2.0

// Package layout describes a loudspeaker array as seen by the renderer.
//
// Every speaker owns one output channel. Channel indices are dense and
// 0-based so that output buffers can be plain slices indexed by channel;
// hardware numbering (which often has gaps) is kept alongside in
// DeviceChannel and never used for indexing.
package layout

import (
	"fmt"
	"math"
	"slices"

	"github.com/ik5/vbaprender/geom"
)

// Speaker is one loudspeaker. Azimuth and Elevation are expressed in the
// owning Layout's Unit; Radius is the distance from the centre in metres.
type Speaker struct {
	Azimuth       float64
	Elevation     float64
	Radius        float64
	Channel       int // dense output channel, 0..N-1
	DeviceChannel int // hardware channel number, informational
}

// Layout is a speaker array.
type Layout struct {
	Unit     geom.AngleUnit
	Speakers []Speaker
}

// Len returns the number of speakers, which is also the output channel count.
func (l Layout) Len() int { return len(l.Speakers) }

// Validate checks that the layout is non-empty, that angles are finite and
// that channel indices are exactly 0..N-1.
func (l Layout) Validate() error {
	if len(l.Speakers) == 0 {
		return ErrEmptyLayout
	}

	seen := make([]bool, len(l.Speakers))
	for i, s := range l.Speakers {
		if !finite(s.Azimuth) || !finite(s.Elevation) || !finite(s.Radius) {
			return fmt.Errorf("speaker %d: %w", i, ErrInvalidSpeaker)
		}
		if s.Channel < 0 || s.Channel >= len(l.Speakers) {
			return fmt.Errorf("speaker %d has channel %d with %d speakers: %w",
				i, s.Channel, len(l.Speakers), ErrChannelGap)
		}
		if seen[s.Channel] {
			return fmt.Errorf("speaker %d, channel %d: %w", i, s.Channel, ErrDuplicateChannel)
		}
		seen[s.Channel] = true
	}
	return nil
}

// Ordered returns a copy of the speakers sorted by Channel. Index i of the
// result is the speaker feeding output channel i for a valid layout.
func (l Layout) Ordered() []Speaker {
	out := slices.Clone(l.Speakers)
	slices.SortStableFunc(out, func(a, b Speaker) int { return a.Channel - b.Channel })
	return out
}

// DeviceMap returns, for each dense channel, the hardware channel it should
// be routed to.
func (l Layout) DeviceMap() []int {
	ordered := l.Ordered()
	m := make([]int, len(ordered))
	for i, s := range ordered {
		m[i] = s.DeviceChannel
	}
	return m
}

// FromDevice builds a layout from speakers numbered by hardware channel.
// Dense channel indices are assigned in order of appearance; DeviceChannel
// keeps the original number.
func FromDevice(unit geom.AngleUnit, speakers []Speaker) Layout {
	out := make([]Speaker, len(speakers))
	for i, s := range speakers {
		s.DeviceChannel = s.Channel
		s.Channel = i
		out[i] = s
	}
	return Layout{Unit: unit, Speakers: out}
}

// Ring returns n speakers equally spaced on the horizontal plane starting at
// azimuth 0, expressed in degrees, each at radius.
func Ring(n int, radius float64) Layout {
	speakers := make([]Speaker, n)
	for i := range n {
		speakers[i] = Speaker{
			Azimuth:       float64(i) * 360 / float64(n),
			Radius:        radius,
			Channel:       i,
			DeviceChannel: i + 1,
		}
	}
	return Layout{Unit: geom.Degrees, Speakers: speakers}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
