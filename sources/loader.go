// SPDX-License-Identifier: EPL-2.0

package sources

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/ik5/vbaprender/audio"
	"github.com/ik5/vbaprender/formats/aiff"
	"github.com/ik5/vbaprender/formats/mp3"
	"github.com/ik5/vbaprender/formats/vorbis"
	"github.com/ik5/vbaprender/formats/wav"
	"github.com/ik5/vbaprender/render"
	"github.com/ik5/vbaprender/trajectory"
)

// Extensions is the lookup order for source files.
var Extensions = []string{"wav", "aif", "aiff", "ogg", "mp3"}

// DefaultRegistry returns a registry with every decoder in formats/.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	wav.Register(reg)
	aiff.Register(reg)
	vorbis.Register(reg)
	mp3.Register(reg)
	return reg
}

// Loader reads source signals from a file system.
type Loader struct {
	fsys       fs.FS
	registry   *audio.Registry
	conform    bool
	bufferSize int
	logger     *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithConform downmixes multichannel files and resamples to the set's rate
// instead of rejecting them.
func WithConform(on bool) Option {
	return func(l *Loader) { l.conform = on }
}

// WithRegistry replaces DefaultRegistry.
func WithRegistry(reg *audio.Registry) Option {
	return func(l *Loader) {
		if reg != nil {
			l.registry = reg
		}
	}
}

// WithBufferSize sets the read size in samples.
func WithBufferSize(n int) Option {
	return func(l *Loader) { l.bufferSize = n }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader reads from fsys; use os.DirFS for a directory on disk.
func NewLoader(fsys fs.FS, opts ...Option) *Loader {
	l := &Loader{
		fsys:       fsys,
		registry:   DefaultRegistry(),
		bufferSize: audio.DefaultBufferSize,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Find returns the file name holding source id.
func (l *Loader) Find(id string) (string, error) {
	for _, ext := range Extensions {
		name := id + "." + ext
		if _, err := fs.Stat(l.fsys, name); err == nil {
			return name, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("source %q: %w", id, err)
		}
	}
	return "", fmt.Errorf("%w %q (tried %v)", render.ErrMissingSource, id, Extensions)
}

// Load reads the signal of every source in set, keyed by id.
func (l *Loader) Load(set *trajectory.Set) (map[string]audio.Mono, error) {
	out := make(map[string]audio.Mono, len(set.Sources))
	for _, id := range set.IDs() {
		m, err := l.LoadOne(id, set.SampleRate)
		if err != nil {
			return nil, err
		}
		out[id] = m
	}
	return out, nil
}

// LoadOne reads source id, delivering it at sampleRate.
func (l *Loader) LoadOne(id string, sampleRate int) (audio.Mono, error) {
	name, err := l.Find(id)
	if err != nil {
		return audio.Mono{}, err
	}

	ext := path.Ext(name)
	dec, ok := l.registry.Get(ext)
	if !ok {
		return audio.Mono{}, fmt.Errorf("%s: %w %q", name, ErrNoDecoder, ext)
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		return audio.Mono{}, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return audio.Mono{}, fmt.Errorf("decoding %s: %w", name, err)
	}
	defer src.Close()

	if l.conform {
		if src.Channels() != 1 || src.SampleRate() != sampleRate {
			l.logger.Info("sources: conforming",
				"source", id,
				"file", name,
				"channels", src.Channels(),
				"sample_rate", src.SampleRate(),
				"target_rate", sampleRate,
			)
		}
		m, err := audio.Conform(src, sampleRate, l.bufferSize)
		if err != nil {
			return audio.Mono{}, fmt.Errorf("conforming %s: %w", name, err)
		}
		return m, nil
	}

	if src.SampleRate() != sampleRate {
		return audio.Mono{}, fmt.Errorf("%s at %d Hz, set at %d Hz: %w",
			name, src.SampleRate(), sampleRate, render.ErrSampleRateMismatch)
	}
	m, err := audio.ReadMono(src, l.bufferSize)
	if err != nil {
		return audio.Mono{}, fmt.Errorf("reading %s: %w", name, err)
	}

	l.logger.Debug("sources: loaded",
		"source", id,
		"file", name,
		"samples", m.Len(),
		"duration", m.Duration(),
	)
	return m, nil
}
