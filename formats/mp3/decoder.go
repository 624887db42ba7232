// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/vbaprender/audio"
	"github.com/ik5/vbaprender/utils"
)

// go-mp3 always decodes to 16-bit little-endian stereo
const (
	channels    = 2
	frameBytes  = 2 * channels
	sampleDepth = 16
)

// mp3Reader is the subset of gomp3.Decoder the source reads from.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// bytes of a frame split across two Read calls
	pending []byte
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

// ReadSamples returns whole stereo frames only.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	have := copy(s.buf, s.pending)
	s.pending = s.pending[:0]

	var err error
	for tries := 0; have < frameBytes && tries < 100; tries++ {
		var n int
		n, err = s.dec.Read(s.buf[have:])
		have += n
		if err != nil {
			break
		}
	}

	whole := have - have%frameBytes
	s.pending = append(s.pending, s.buf[whole:have]...)

	for i := range whole / 2 {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = utils.PCMToFloat(int(v), sampleDepth)
	}

	switch {
	case errors.Is(err, io.EOF):
		s.eof = true
		return whole / 2, io.EOF
	case err != nil:
		return whole / 2, fmt.Errorf("decoding mp3: %w", err)
	}
	return whole / 2, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}

// Register adds the MP3 decoder to reg under "mp3".
func Register(reg *audio.Registry) {
	reg.Register("mp3", Decoder{})
}
