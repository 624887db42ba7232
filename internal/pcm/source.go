// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/vbaprender/utils"
)

// Reader is the subset of go-audio decoders (wav, aiff) Source needs.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source implements audio.Source on top of a Reader.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
	done       bool
}

// NewSource wraps dec, whose samples are bitDepth bits wide.
func NewSource(dec Reader, bitDepth int) (*Source, error) {
	if !ValidBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrNoFormat
	}

	return &Source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   bitDepth,
	}, nil
}

// ValidBitDepth reports whether bitDepth is one of 8, 16, 24 or 32.
func ValidBitDepth(bitDepth int) bool {
	switch bitDepth {
	case 8, 16, 24, 32:
		return true
	}
	return false
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		s.done = true
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("reading pcm: %w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.PCMToFloat(v, s.bitDepth)
	}

	// a short read with no error means the data chunk ran out
	if n < len(dst) || err == io.EOF {
		s.done = true
		return n, io.EOF
	}
	if err != nil {
		return n, fmt.Errorf("reading pcm: %w", err)
	}
	return n, nil
}

// Seekable returns r as an io.ReadSeeker, buffering it in memory when r
// cannot seek. The go-audio decoders need to seek between chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
