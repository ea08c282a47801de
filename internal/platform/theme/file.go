package theme

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// LoadFile reads a TOML theme override file on top of Default.
//
// Keys missing from the file keep their default values. An empty path
// returns Default unchanged.
func LoadFile(path string) (Theme, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme file: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML theme overrides on top of Default and validates the result.
func Parse(data []byte) (Theme, error) {
	th := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&th); err != nil {
		return Theme{}, fmt.Errorf("decode theme: %w", err)
	}
	if err := th.Validate(); err != nil {
		return Theme{}, err
	}
	return th, nil
}
