// SPDX-License-Identifier: EPL-2.0

package trajectory

import (
	"fmt"
	"sort"
)

// Set maps source identifiers to their trajectories and carries the global
// sample rate every source must be delivered at.
type Set struct {
	SampleRate int
	Sources    map[string]Trajectory
}

// IDs returns the source identifiers in ascending order. The render engine
// iterates sources in this order, which keeps floating point summation
// reproducible from run to run.
func (s *Set) IDs() []string {
	ids := make([]string, 0, len(s.Sources))
	for id := range s.Sources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks the sample rate and every trajectory in the set.
func (s *Set) Validate() error {
	if s.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, s.SampleRate)
	}
	if len(s.Sources) == 0 {
		return ErrNoSources
	}
	for _, id := range s.IDs() {
		if err := s.Sources[id].Validate(); err != nil {
			return fmt.Errorf("source %q: %w", id, err)
		}
	}
	return nil
}

// Duration is the time of the latest keyframe across all sources.
func (s *Set) Duration() float64 {
	var d float64
	for _, tr := range s.Sources {
		if len(tr) > 0 && tr.End() > d {
			d = tr.End()
		}
	}
	return d
}
