// SPDX-License-Identifier: EPL-2.0

package render

// accumulator holds one block of samples per output channel.
// Every worker owns one; it is never shared.
type accumulator struct {
	channels [][]float32
	view     [][]float32
	// scratch holds a zero padded source block
	scratch []float32
}

func newAccumulator(channels, blockSize int) *accumulator {
	a := &accumulator{
		channels: make([][]float32, channels),
		view:     make([][]float32, channels),
		scratch:  make([]float32, blockSize),
	}
	for c := range a.channels {
		a.channels[c] = make([]float32, blockSize)
	}
	return a
}

// reset zeroes the first n samples of every channel and returns them.
// The returned slices are valid until the next reset.
func (a *accumulator) reset(n int) [][]float32 {
	for c, ch := range a.channels {
		ch = ch[:n]
		clear(ch)
		a.view[c] = ch
	}
	return a.view
}

// extract returns samples [start, start+n) of src, zero padded past its end.
func (a *accumulator) extract(src []float32, start, n int) []float32 {
	if start+n <= len(src) {
		return src[start : start+n]
	}

	block := a.scratch[:n]
	copied := 0
	if start < len(src) {
		copied = copy(block, src[start:])
	}
	clear(block[copied:])
	return block
}
