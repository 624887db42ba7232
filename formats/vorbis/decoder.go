// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/vbaprender/audio"
)

// oggReader is the subset of oggvorbis.Reader the source reads from.
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read returns the number of values (frames * channels) decoded.
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	eof        bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	n, err := s.dec.Read(dst)
	switch {
	case errors.Is(err, io.EOF):
		s.eof = true
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}
	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}

// Register adds the Vorbis decoder to reg under "ogg" and "oga".
func Register(reg *audio.Registry) {
	reg.Register("ogg", Decoder{})
	reg.Register("oga", Decoder{})
}
