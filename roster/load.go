package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a roster file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads and validates a roster file
func Load(path string) (Roster, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Roster{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("reading roster %s: %w", path, err)
	}

	r, err := Parse(data, format)
	if err != nil {
		return Roster{}, fmt.Errorf("roster %s: %w", path, err)
	}
	return r, nil
}

// Parse decodes and validates roster data
func Parse(data []byte, format Format) (Roster, error) {
	var r Roster

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &r)
		if err != nil {
			return Roster{}, fmt.Errorf("parsing toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Roster{}, fmt.Errorf("parsing toml: unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; Validate reports it as an empty roster
		if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
			return Roster{}, fmt.Errorf("parsing yaml: %w", err)
		}
	default:
		return Roster{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := r.Validate(); err != nil {
		return Roster{}, err
	}
	return r, nil
}
