// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/vbaprender/internal/audiotest"
)

type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 1, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}

	if _, ok := registry.Get("flac"); ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_NormalizesKeys(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "aiff"}
	registry.Register(".AIFF", decoder)

	for _, key := range []string{"aiff", ".aiff", "AIFF", ".Aiff"} {
		if got, ok := registry.Get(key); !ok || got != decoder {
			t.Errorf("Registry.Get(%q) = %v, %v; want registered decoder", key, got, ok)
		}
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, f := range []string{"ogg", "wav", "mp3", "aiff"} {
		registry.Register(f, &mockDecoder{name: f})
	}

	if got, want := registry.Formats(), []string{"aiff", "mp3", "ogg", "wav"}; !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register("wav", &mockDecoder{name: "wav"})
		}()
		go func() {
			defer wg.Done()
			registry.Get("wav")
			_ = i
		}()
	}
	wg.Wait()

	if _, ok := registry.Get("wav"); !ok {
		t.Error("Registry.Get() failed after concurrent registration")
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{name: "wav"})

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_, _ = registry.Get("wav")
	}
}
