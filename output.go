// SPDX-License-Identifier: EPL-2.0

package vbaprender

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/vbaprender/audio"
	"github.com/ik5/vbaprender/formats/aiff"
	"github.com/ik5/vbaprender/formats/wav"
)

// Output containers.
const (
	ContainerWAV  = "wav"
	ContainerAIFF = "aiff"
)

// ContainerOf picks the output container from the file extension: .aif and
// .aiff select AIFF, anything else WAV.
func ContainerOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".aif", ".aiff", ".aifc":
		return ContainerAIFF
	default:
		return ContainerWAV
	}
}

// Write encodes m to w in the given container.
func Write(w io.WriteSeeker, container string, m *audio.Multichannel, bitDepth int) error {
	switch container {
	case ContainerAIFF:
		return aiff.WriteMultichannel(w, m, bitDepth)
	case ContainerWAV:
		return wav.WriteMultichannel(w, m, bitDepth)
	default:
		return fmt.Errorf("unknown container %q", container)
	}
}

// WriteFile writes m to path, creating missing parent directories. The file
// is written under a temporary name and renamed into place, so a failed
// write never leaves a truncated output behind.
func WriteFile(path string, m *audio.Multichannel, bitDepth int) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(f.Name()))
		}
	}()

	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return fmt.Errorf("creating output: %w", err)
	}
	if err := Write(f, ContainerOf(path), m, bitDepth); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("moving output into place: %w", err)
	}
	return nil
}
