// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/ik5/vbaprender/geom"
	"github.com/ik5/vbaprender/layout"
)

// LayoutFile is the on-disk shape of a speaker layout.
type LayoutFile struct {
	Unit     string         `json:"unit,omitempty" yaml:"unit,omitempty"`
	Speakers []SpeakerEntry `json:"speakers" yaml:"speakers"`
}

// SpeakerEntry is one speaker. Az, El and Channel are required.
type SpeakerEntry struct {
	Az      *float64 `json:"az" yaml:"az"`
	El      *float64 `json:"el" yaml:"el"`
	Radius  float64  `json:"radius,omitempty" yaml:"radius,omitempty"`
	Channel *int     `json:"channel" yaml:"channel"`
}

// Layout converts the file into a validated layout.Layout.
func (f *LayoutFile) Layout() (layout.Layout, error) {
	unit, err := geom.ParseAngleUnit(f.Unit)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if len(f.Speakers) == 0 {
		return layout.Layout{}, fmt.Errorf("%w: %w", ErrInvalidScene, layout.ErrEmptyLayout)
	}

	speakers := make([]layout.Speaker, len(f.Speakers))
	devices := make(map[int]int, len(f.Speakers))
	for i, s := range f.Speakers {
		switch {
		case s.Az == nil:
			return layout.Layout{}, fmt.Errorf("%w: speaker %d has no az", ErrInvalidScene, i)
		case s.El == nil:
			return layout.Layout{}, fmt.Errorf("%w: speaker %d has no el", ErrInvalidScene, i)
		case s.Channel == nil:
			return layout.Layout{}, fmt.Errorf("%w: speaker %d has no channel", ErrInvalidScene, i)
		}
		if prev, dup := devices[*s.Channel]; dup {
			return layout.Layout{}, fmt.Errorf("%w: speakers %d and %d share channel %d: %w",
				ErrInvalidScene, prev, i, *s.Channel, layout.ErrDuplicateChannel)
		}
		devices[*s.Channel] = i

		speakers[i] = layout.Speaker{
			Azimuth:   *s.Az,
			Elevation: *s.El,
			Radius:    s.Radius,
			Channel:   *s.Channel,
		}
	}

	l := layout.FromDevice(unit, speakers)
	if err := l.Validate(); err != nil {
		return layout.Layout{}, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return l, nil
}

// NewLayoutFile is the inverse of LayoutFile.Layout. Speakers are written
// in channel order with their device channel.
func NewLayoutFile(l layout.Layout) *LayoutFile {
	f := &LayoutFile{Unit: l.Unit.String()}
	for _, s := range l.Ordered() {
		az, el, ch := s.Azimuth, s.Elevation, s.DeviceChannel
		f.Speakers = append(f.Speakers, SpeakerEntry{Az: &az, El: &el, Radius: s.Radius, Channel: &ch})
	}
	return f
}

// DecodeLayout reads a layout in format f from r.
func DecodeLayout(r io.Reader, f Format) (layout.Layout, error) {
	var file LayoutFile
	if err := decode(r, f, &file); err != nil {
		return layout.Layout{}, err
	}
	return file.Layout()
}

// EncodeLayout writes l to w in format f.
func EncodeLayout(w io.Writer, f Format, l layout.Layout) error {
	return encode(w, f, NewLayoutFile(l))
}

// LoadLayout reads the layout file name from fsys.
func LoadLayout(fsys fs.FS, name string) (layout.Layout, error) {
	f, err := FormatOf(name)
	if err != nil {
		return layout.Layout{}, err
	}

	file, err := fsys.Open(name)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("opening layout: %w", err)
	}
	defer file.Close()

	l, err := DecodeLayout(file, f)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("%s: %w", name, err)
	}
	return l, nil
}
