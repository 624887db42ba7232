// SPDX-License-Identifier: EPL-2.0

package trajectory

import (
	"fmt"
	"math"
	"sort"

	"github.com/ik5/vbaprender/geom"
)

// Keyframe is a timestamped direction. Dir does not have to be normalized.
type Keyframe struct {
	Time float64 // seconds
	Dir  geom.Vec3
}

// Trajectory is a source's keyframes ordered non-decreasing by Time.
type Trajectory []Keyframe

// Validate checks that the trajectory can be interpolated at any time:
// at least one keyframe, finite values, strictly increasing times between
// consecutive keyframes and non-zero directions.
func (tr Trajectory) Validate() error {
	if len(tr) == 0 {
		return ErrNoKeyframes
	}
	for i, k := range tr {
		if math.IsNaN(k.Time) || math.IsInf(k.Time, 0) {
			return fmt.Errorf("keyframe %d: %w", i, ErrInvalidTime)
		}
		if _, ok := k.Dir.Normalize(); !ok {
			return fmt.Errorf("keyframe %d: %w", i, ErrZeroDirection)
		}
		if i == 0 {
			continue
		}
		prev := tr[i-1].Time
		switch {
		case k.Time < prev:
			return fmt.Errorf("keyframe %d (t=%g) after t=%g: %w", i, k.Time, prev, ErrUnorderedKeyframes)
		case k.Time == prev:
			return fmt.Errorf("keyframes %d and %d at t=%g: %w", i-1, i, k.Time, ErrDegenerateInterval)
		}
	}
	return nil
}

// Start and End return the time span covered by keyframes.
func (tr Trajectory) Start() float64 { return tr[0].Time }
func (tr Trajectory) End() float64   { return tr[len(tr)-1].Time }

// DirectionAt returns the unit direction at t seconds.
//
// Queries outside [Start, End] are clamped to the boundary keyframe. A query
// that lands on a timestamp shared by two consecutive keyframes has no
// defined interpolation weight and returns ErrDegenerateInterval.
func (tr Trajectory) DirectionAt(t float64) (geom.Vec3, error) {
	if len(tr) == 0 {
		return geom.Vec3{}, ErrNoKeyframes
	}
	if math.IsNaN(t) {
		return geom.Vec3{}, ErrInvalidTime
	}

	if len(tr) == 1 {
		return unit(tr[0].Dir)
	}
	if tr.sharedAt(t) {
		return geom.Vec3{}, fmt.Errorf("keyframes at t=%g: %w", t, ErrDegenerateInterval)
	}
	if t <= tr[0].Time {
		return unit(tr[0].Dir)
	}
	last := len(tr) - 1
	if t >= tr[last].Time {
		return unit(tr[last].Dir)
	}

	// first keyframe strictly after t; tr[0].Time < t < tr[last].Time so 1 <= i <= last
	i := sort.Search(len(tr), func(i int) bool { return tr[i].Time > t })
	k0, k1 := tr[i-1], tr[i]

	span := k1.Time - k0.Time
	if span <= 0 {
		return geom.Vec3{}, fmt.Errorf("keyframes at t=%g: %w", k0.Time, ErrDegenerateInterval)
	}

	u := (t - k0.Time) / span
	return unit(geom.Lerp(k0.Dir, k1.Dir, u))
}

// sharedAt reports whether two consecutive keyframes both sit exactly at t.
func (tr Trajectory) sharedAt(t float64) bool {
	lo := sort.Search(len(tr), func(i int) bool { return tr[i].Time >= t })
	return lo+1 < len(tr) && tr[lo].Time == t && tr[lo+1].Time == t
}

func unit(v geom.Vec3) (geom.Vec3, error) {
	n, ok := v.Normalize()
	if !ok {
		return geom.Vec3{}, ErrZeroDirection
	}
	return n, nil
}

// SortByTime orders keyframes by time, keeping the input order of equal
// timestamps.
func (tr Trajectory) SortByTime() {
	sort.SliceStable(tr, func(i, j int) bool { return tr[i].Time < tr[j].Time })
}
