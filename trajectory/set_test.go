// SPDX-License-Identifier: EPL-2.0

package trajectory

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/vbaprender/geom"
)

func TestSet_IDsSorted(t *testing.T) {
	t.Parallel()

	kf := Trajectory{{Time: 0, Dir: geom.Vec3{X: 1}}}
	s := &Set{SampleRate: 48000, Sources: map[string]Trajectory{
		"src_3": kf, "11": kf, "src_1": kf, "2": kf,
	}}

	want := []string{"11", "2", "src_1", "src_3"}
	for range 10 {
		if got := s.IDs(); !slices.Equal(got, want) {
			t.Fatalf("IDs() = %v, want %v", got, want)
		}
	}
}

func TestSet_Validate(t *testing.T) {
	t.Parallel()

	ok := Trajectory{{Time: 0, Dir: geom.Vec3{X: 1}}}
	bad := Trajectory{{Time: 1, Dir: geom.Vec3{X: 1}}, {Time: 1, Dir: geom.Vec3{Y: 1}}}

	tests := []struct {
		name    string
		set     *Set
		wantErr error
	}{
		{name: "valid", set: &Set{SampleRate: 44100, Sources: map[string]Trajectory{"a": ok}}},
		{name: "zero rate", set: &Set{SampleRate: 0, Sources: map[string]Trajectory{"a": ok}}, wantErr: ErrInvalidSampleRate},
		{name: "no sources", set: &Set{SampleRate: 48000}, wantErr: ErrNoSources},
		{name: "bad trajectory", set: &Set{SampleRate: 48000, Sources: map[string]Trajectory{"a": ok, "b": bad}}, wantErr: ErrDegenerateInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.set.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSet_Duration(t *testing.T) {
	t.Parallel()

	s := &Set{SampleRate: 48000, Sources: map[string]Trajectory{
		"a": {{Time: 0, Dir: geom.Vec3{X: 1}}, {Time: 4, Dir: geom.Vec3{Y: 1}}},
		"b": {{Time: 7.5, Dir: geom.Vec3{X: 1}}},
	}}
	if got := s.Duration(); got != 7.5 {
		t.Errorf("Duration() = %v, want 7.5", got)
	}
}
