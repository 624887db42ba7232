// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/ik5/vbaprender/audio"
	"github.com/ik5/vbaprender/formats/aiff"
	"github.com/ik5/vbaprender/internal/audiotest"
)

// Example encodes a stereo buffer as AIFF and decodes it again.
func Example() {
	stereo := audio.NewMultichannel(44100, 2, 4410)

	var file audiotest.SeekBuffer
	if err := aiff.WriteMultichannel(&file, stereo, 16); err != nil {
		log.Fatal(err)
	}

	src, err := aiff.Decoder{}.Decode(bytes.NewReader(file.Bytes()))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Sample Rate: %d Hz\n", src.SampleRate())
	fmt.Printf("Channels: %d\n", src.Channels())

	// Output:
	// Sample Rate: 44100 Hz
	// Channels: 2
}
