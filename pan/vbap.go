// SPDX-License-Identifier: EPL-2.0

package pan

import (
	"fmt"
	"math"
	"sort"

	"github.com/ik5/vbaprender/geom"
	"github.com/ik5/vbaprender/layout"
)

const (
	// planarTolerance is the largest |elevation| (radians) for which a
	// layout is treated as horizontal-only.
	planarTolerance = 1e-3
	// gainTolerance lets directions that sit exactly on an edge of a speaker
	// set still resolve to it despite rounding.
	gainTolerance = 1e-6
	detTolerance  = 1e-9
)

type mode int

const (
	modeSingle mode = iota
	modePairs
	modeTriplets
)

// speakerSet is a speaker pair (2D) or triplet (3D) with the rows of its
// inverted base matrix: gains are g[k] = dot(p, inv[k]).
type speakerSet struct {
	idx [3]int
	inv [3]geom.Vec3
	n   int
}

func (s *speakerSet) gains(p geom.Vec3) (g [3]float64) {
	for k := 0; k < s.n; k++ {
		g[k] = p.Dot(s.inv[k])
	}
	return g
}

// VBAP is vector base amplitude panning over an arbitrary layout.
type VBAP struct {
	speakers []geom.Vec3
	mode     mode
	sets     []speakerSet
}

// NewVBAP converts the layout to unit vectors and precomputes every usable
// speaker set.
func NewVBAP(l layout.Layout) (*VBAP, error) {
	vecs, err := speakerVectors(l)
	if err != nil {
		return nil, err
	}

	v := &VBAP{speakers: vecs}
	switch {
	case len(vecs) == 1:
		v.mode = modeSingle
		return v, nil
	case len(vecs) == 2 || isPlanar(vecs):
		v.mode = modePairs
		v.sets = pairs(vecs)
	default:
		v.mode = modeTriplets
		v.sets = triplets(vecs)
	}

	if len(v.sets) == 0 {
		return nil, fmt.Errorf("%d speakers: %w", len(vecs), ErrDegenerateLayout)
	}
	return v, nil
}

func (v *VBAP) Channels() int { return len(v.speakers) }

// Sets returns the number of speaker pairs or triplets in use.
func (v *VBAP) Sets() int { return len(v.sets) }

// Gains returns the per-channel gains for dir. The result has unit power.
func (v *VBAP) Gains(dir geom.Vec3) ([]float64, error) {
	idx, g, n, err := v.resolve(dir)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(v.speakers))
	for k := range n {
		out[idx[k]] = g[k]
	}
	return out, nil
}

// Apply adds dir-panned copies of block into out.
func (v *VBAP) Apply(dir geom.Vec3, block []float32, out [][]float32) error {
	if err := checkOut(len(v.speakers), out, len(block)); err != nil {
		return err
	}
	idx, g, n, err := v.resolve(dir)
	if err != nil {
		return err
	}
	for k := range n {
		if g[k] == 0 {
			continue
		}
		mix(out[idx[k]], block, float32(g[k]))
	}
	return nil
}

func (v *VBAP) resolve(dir geom.Vec3) (idx [3]int, g [3]float64, n int, err error) {
	p, ok := dir.Normalize()
	if !ok {
		return idx, g, 0, fmt.Errorf("direction %v: %w", dir, ErrNoSpeakerSet)
	}

	switch v.mode {
	case modeSingle:
		idx[0], g[0] = 0, 1
		return idx, g, 1, nil
	case modePairs:
		p.Z = 0
		if p, ok = p.Normalize(); !ok {
			return idx, g, 0, fmt.Errorf("direction %v has no horizontal component: %w", dir, ErrNoSpeakerSet)
		}
	}

	best := -1
	bestMin := math.Inf(-1)
	var bestGains [3]float64
	for i := range v.sets {
		s := &v.sets[i]
		sg := s.gains(p)
		m := sg[0]
		for k := 1; k < s.n; k++ {
			m = min(m, sg[k])
		}
		if m < -gainTolerance {
			continue
		}
		if m > bestMin {
			best, bestMin, bestGains = i, m, sg
		}
	}
	if best < 0 {
		return idx, g, 0, fmt.Errorf("direction %v: %w", dir, ErrNoSpeakerSet)
	}

	s := &v.sets[best]
	var power float64
	for k := range s.n {
		gk := max(bestGains[k], 0)
		g[k] = gk
		power += gk * gk
	}
	norm := 1 / math.Sqrt(power)
	for k := range s.n {
		g[k] *= norm
	}
	return s.idx, g, s.n, nil
}

func isPlanar(vecs []geom.Vec3) bool {
	for _, v := range vecs {
		if math.Abs(v.Z) > math.Sin(planarTolerance) {
			return false
		}
	}
	return true
}

// pairs joins speakers adjacent in azimuth. Pairs spanning π or more cannot
// pan between their speakers and are dropped.
func pairs(vecs []geom.Vec3) []speakerSet {
	type entry struct {
		ch int
		az float64
	}
	order := make([]entry, len(vecs))
	for i, v := range vecs {
		order[i] = entry{ch: i, az: math.Atan2(v.Y, v.X)}
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].az < order[j].az })

	n := len(order)
	count := n
	if n == 2 {
		count = 2 // both orientations; at most one spans less than π
	}

	var sets []speakerSet
	for i := range count {
		a, b := order[i], order[(i+1)%n]
		aperture := b.az - a.az
		if aperture <= 0 {
			aperture += 2 * math.Pi
		}
		if aperture >= math.Pi-1e-9 {
			continue
		}
		va := geom.Vec3{X: math.Cos(a.az), Y: math.Sin(a.az)}
		vb := geom.Vec3{X: math.Cos(b.az), Y: math.Sin(b.az)}
		det := va.X*vb.Y - va.Y*vb.X
		if math.Abs(det) < detTolerance {
			continue
		}
		sets = append(sets, speakerSet{
			idx: [3]int{a.ch, b.ch},
			inv: [3]geom.Vec3{
				{X: vb.Y / det, Y: -vb.X / det},
				{X: -va.Y / det, Y: va.X / det},
			},
			n: 2,
		})
	}
	return sets
}

// triplets keeps every non-degenerate speaker triangle that does not
// contain another speaker.
func triplets(vecs []geom.Vec3) []speakerSet {
	n := len(vecs)
	var sets []speakerSet
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				s, ok := newTriplet(vecs, i, j, k)
				if !ok || containsOther(vecs, &s) {
					continue
				}
				sets = append(sets, s)
			}
		}
	}
	return sets
}

func newTriplet(vecs []geom.Vec3, i, j, k int) (speakerSet, bool) {
	a, b, c := vecs[i], vecs[j], vecs[k]
	det := geom.Det3(a, b, c)
	if math.Abs(det) < detTolerance {
		return speakerSet{}, false
	}
	inv := 1 / det
	return speakerSet{
		idx: [3]int{i, j, k},
		inv: [3]geom.Vec3{
			b.Cross(c).Scale(inv),
			c.Cross(a).Scale(inv),
			a.Cross(b).Scale(inv),
		},
		n: 3,
	}, true
}

func containsOther(vecs []geom.Vec3, s *speakerSet) bool {
	for m, v := range vecs {
		if m == s.idx[0] || m == s.idx[1] || m == s.idx[2] {
			continue
		}
		g := s.gains(v)
		if g[0] > gainTolerance && g[1] > gainTolerance && g[2] > gainTolerance {
			return true
		}
	}
	return false
}
