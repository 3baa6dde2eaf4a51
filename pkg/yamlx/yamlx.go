package yamlx

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bearkit/bearkit/pkg/dictx"
)

// Load reads and decodes a YAML file into a map[string]any tree.
func Load(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("yamlx: read %q: %w", path, err)
	}

	data := make(map[string]any)
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return data, nil
}

// LoadInto reads and decodes a YAML file into an arbitrary destination,
// typically a tagged struct.
func LoadInto(path string, dest any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("yamlx: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, dest); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}

// Save encodes data as YAML and writes it to path, creating or truncating
// the file.
func Save(path string, data any) error {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return errors.Join(ErrEncode, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("yamlx: write %q: %w", path, err)
	}
	return nil
}

// Marshal renders data as a YAML string.
func Marshal(data any) (string, error) {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return "", errors.Join(ErrEncode, err)
	}
	return string(raw), nil
}

// GetNested extracts a value from a decoded document by a sequence of keys.
//
//	port, err := yamlx.GetNested(doc, "server", "listen", "port")
//
// Traversal is delegated to dictx; a missing key or a scalar in the middle
// of the path yields the corresponding dictx error.
func GetNested(data map[string]any, keys ...string) (any, error) {
	return dictx.NestedKeys(data, keys...)
}
