// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/vbaprender/utils"
)

// Resampler converts src to another sample rate with Catmull-Rom cubic
// interpolation. Samples stay interleaved and the channel count is kept.
// When downsampling, a one-pole low-pass runs on the input frames.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// window[0..3] hold frames t-1, t, t+1, t+2; have marks filled slots
	window [4][]float32
	have   [4]bool
	primed bool

	// fractional position between window[1] and window[2]
	pos float64

	frame []float32
	eof   bool

	lowpass bool
	warm    bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frame:    make([]float32, channels),
		lowpass:  step > 1,
		alpha:    0.5,
		state:    make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame reads one interleaved frame from src into r.frame.
func (r *Resampler) readFrame() (bool, error) {
	n, err := r.src.ReadSamples(r.frame)
	got := n > 0
	if got && r.lowpass {
		if !r.warm {
			// start the filter from the first sample to avoid a fade-in
			copy(r.state, r.frame)
			r.warm = true
		}
		for c := range r.channels {
			r.frame[c] = r.alpha*r.frame[c] + (1-r.alpha)*r.state[c]
			r.state[c] = r.frame[c]
		}
	}
	if errors.Is(err, io.EOF) {
		r.eof = true
		return got, nil
	}
	if err != nil {
		return got, fmt.Errorf("%w", err)
	}
	return got, nil
}

// fill reads the next frame into slot i, marking it empty at end of stream.
func (r *Resampler) fill(i int) error {
	r.have[i] = false
	for tries := 0; !r.eof; tries++ {
		got, err := r.readFrame()
		if err != nil {
			return err
		}
		if got {
			copy(r.window[i], r.frame)
			r.have[i] = true
			return nil
		}
		if tries >= maxEmptyReads {
			return fmt.Errorf("reading frame: %w", io.ErrNoProgress)
		}
	}
	return nil
}

// prime loads the first frame as both t-1 and t, then t+1 and t+2.
func (r *Resampler) prime() error {
	if err := r.fill(1); err != nil {
		return err
	}
	if !r.have[1] {
		return io.EOF
	}
	copy(r.window[0], r.window[1])
	r.have[0] = true

	for i := 2; i < len(r.window); i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}
	r.primed = true
	return nil
}

// advance shifts the window by one source frame. It returns io.EOF once
// the frame at t is past the end of the source.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	r.window[3] = first
	copy(r.have[:], r.have[1:])

	if err := r.fill(3); err != nil {
		return err
	}
	if !r.have[1] {
		return io.EOF
	}
	return nil
}

// ReadSamples produces len(dst)/Channels() frames at the target rate.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	want := len(dst) / r.channels
	written := 0

	for written < want {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				if errors.Is(err, io.EOF) {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			var w [4]float32
			w[1] = r.window[1][c]
			w[0], w[2] = w[1], w[1]
			if r.have[0] {
				w[0] = r.window[0][c]
			}
			if r.have[2] {
				w[2] = r.window[2][c]
			}
			w[3] = w[2]
			if r.have[3] {
				w[3] = r.window[3][c]
			}
			out[c] = utils.CatmullRom(w, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
