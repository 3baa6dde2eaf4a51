package yamlx

import "errors"

var (
	// ErrDecode is returned when file contents cannot be parsed as YAML.
	ErrDecode = errors.New("yamlx: failed to decode YAML")

	// ErrEncode is returned when a value cannot be marshaled to YAML.
	ErrEncode = errors.New("yamlx: failed to encode YAML")
)
