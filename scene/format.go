// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a scene file encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format from a file name's extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

func decode(r io.Reader, f Format, v any) error {
	switch f {
	case JSON:
		if err := json.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidScene, err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidScene, err)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	return nil
}

func encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}
