// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/ik5/vbaprender/geom"
	"github.com/ik5/vbaprender/trajectory"
)

// PositionsFile is the on-disk shape of the spatial instructions.
type PositionsFile struct {
	SampleRate int                        `json:"sampleRate" yaml:"sampleRate"`
	Sources    map[string][]KeyframeEntry `json:"sources" yaml:"sources"`
}

// KeyframeEntry is one keyframe: a time in seconds and an [x, y, z] direction.
type KeyframeEntry struct {
	Time *float64  `json:"time" yaml:"time"`
	Cart []float64 `json:"cart" yaml:"cart"`
}

// Set converts the file into a validated trajectory.Set with keyframes
// sorted by time.
func (f *PositionsFile) Set() (*trajectory.Set, error) {
	set := &trajectory.Set{
		SampleRate: f.SampleRate,
		Sources:    make(map[string]trajectory.Trajectory, len(f.Sources)),
	}

	for id, entries := range f.Sources {
		tr := make(trajectory.Trajectory, len(entries))
		for i, e := range entries {
			if e.Time == nil {
				return nil, fmt.Errorf("%w: source %q keyframe %d has no time", ErrInvalidScene, id, i)
			}
			if len(e.Cart) != 3 {
				return nil, fmt.Errorf("%w: source %q keyframe %d: cart has %d values, want 3",
					ErrInvalidScene, id, i, len(e.Cart))
			}
			tr[i] = trajectory.Keyframe{
				Time: *e.Time,
				Dir:  geom.Vec3{X: e.Cart[0], Y: e.Cart[1], Z: e.Cart[2]},
			}
		}
		tr.SortByTime()
		set.Sources[id] = tr
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return set, nil
}

// NewPositionsFile is the inverse of PositionsFile.Set.
func NewPositionsFile(set *trajectory.Set) *PositionsFile {
	f := &PositionsFile{
		SampleRate: set.SampleRate,
		Sources:    make(map[string][]KeyframeEntry, len(set.Sources)),
	}
	for id, tr := range set.Sources {
		entries := make([]KeyframeEntry, len(tr))
		for i, k := range tr {
			t := k.Time
			entries[i] = KeyframeEntry{Time: &t, Cart: []float64{k.Dir.X, k.Dir.Y, k.Dir.Z}}
		}
		f.Sources[id] = entries
	}
	return f
}

// DecodePositions reads spatial instructions in format f from r.
func DecodePositions(r io.Reader, f Format) (*trajectory.Set, error) {
	var file PositionsFile
	if err := decode(r, f, &file); err != nil {
		return nil, err
	}
	return file.Set()
}

// EncodePositions writes set to w in format f.
func EncodePositions(w io.Writer, f Format, set *trajectory.Set) error {
	return encode(w, f, NewPositionsFile(set))
}

// LoadPositions reads the spatial instruction file name from fsys.
func LoadPositions(fsys fs.FS, name string) (*trajectory.Set, error) {
	f, err := FormatOf(name)
	if err != nil {
		return nil, err
	}

	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening positions: %w", err)
	}
	defer file.Close()

	set, err := DecodePositions(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return set, nil
}
