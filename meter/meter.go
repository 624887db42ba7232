// SPDX-License-Identifier: EPL-2.0

package meter

import (
	"fmt"
	"io"
	"math"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ik5/vbaprender/audio"
)

const (
	// SilenceFloor is the level reported for windows with zero energy.
	SilenceFloor = -120.0

	DefaultWindow = time.Second
)

// Channel holds the measurements of one output channel.
type Channel struct {
	Index   int       `yaml:"index" json:"index"`
	Levels  []float64 `yaml:"levels_db" json:"levelsDb"`
	Peak    float64   `yaml:"peak" json:"peak"`
	PeakDB  float64   `yaml:"peak_db" json:"peakDb"`
	Clipped int       `yaml:"clipped" json:"clipped"`
	Silent  bool      `yaml:"silent" json:"silent"`
}

// Report is the result of Analyze. MaxDB, MinDB and MeanDB summarize the
// windowed levels of all channels.
type Report struct {
	SampleRate int       `yaml:"sample_rate" json:"sampleRate"`
	Window     float64   `yaml:"window_s" json:"windowS"`
	Frames     int       `yaml:"frames" json:"frames"`
	Channels   []Channel `yaml:"channels" json:"channels"`
	MaxDB      float64   `yaml:"max_db" json:"maxDb"`
	MinDB      float64   `yaml:"min_db" json:"minDb"`
	MeanDB     float64   `yaml:"mean_db" json:"meanDb"`
	Clipped    int       `yaml:"clipped" json:"clipped"`
	Silent     []int     `yaml:"silent" json:"silent"`
}

// DB converts a linear amplitude to dBFS, returning SilenceFloor for zero
// and anything quieter than the floor.
func DB(amplitude float64) float64 {
	if amplitude <= 0 {
		return SilenceFloor
	}
	return max(20*math.Log10(amplitude), SilenceFloor)
}

// Analyze measures m in windows of the given length.
func Analyze(m *audio.Multichannel, window time.Duration) (*Report, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	size := max(int(math.Round(window.Seconds()*float64(m.SampleRate))), 1)
	rep := &Report{
		SampleRate: m.SampleRate,
		Window:     window.Seconds(),
		Frames:     m.Frames(),
		Channels:   make([]Channel, m.NumChannels()),
		MaxDB:      SilenceFloor,
		MinDB:      SilenceFloor,
		MeanDB:     SilenceFloor,
		Silent:     []int{},
	}

	var (
		sum   float64
		count int
	)
	for c, samples := range m.Channels {
		ch := measure(samples, size)
		ch.Index = c
		rep.Channels[c] = ch

		rep.Clipped += ch.Clipped
		if ch.Silent {
			rep.Silent = append(rep.Silent, c)
		}
		for _, db := range ch.Levels {
			if count == 0 {
				rep.MaxDB, rep.MinDB = db, db
			}
			rep.MaxDB = max(rep.MaxDB, db)
			rep.MinDB = min(rep.MinDB, db)
			sum += db
			count++
		}
	}
	if count > 0 {
		rep.MeanDB = sum / float64(count)
	}

	return rep, nil
}

func measure(samples []float32, size int) Channel {
	ch := Channel{
		Levels: make([]float64, 0, (len(samples)+size-1)/size),
		Silent: true,
	}

	for start := 0; start < len(samples); start += size {
		end := min(start+size, len(samples))

		var energy float64
		for _, s := range samples[start:end] {
			v := float64(s)
			energy += v * v

			a := math.Abs(v)
			ch.Peak = max(ch.Peak, a)
			if a > 1 {
				ch.Clipped++
			}
		}

		db := DB(math.Sqrt(energy / float64(end-start)))
		if db > SilenceFloor {
			ch.Silent = false
		}
		ch.Levels = append(ch.Levels, db)
	}

	ch.PeakDB = DB(ch.Peak)
	return ch
}

// AllSilent reports whether no channel rose above the floor.
func (r *Report) AllSilent() bool {
	return len(r.Silent) == len(r.Channels)
}

// WriteYAML writes the report to w.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding meter report: %w", err)
	}
	return enc.Close()
}
