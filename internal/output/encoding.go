// Package output provides deterministic result encoding for CLI consumers.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format represents a result output format
type Format string

const (
	// JSON encodes results as indented JSON
	JSON Format = "json"
	// YAML encodes results as YAML
	YAML Format = "yaml"
)

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json", "":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unknown output format: %s (expected json or yaml)", s)
	}
}

// Encode writes v to w in the requested format. Struct field order makes the
// encoding deterministic for identical inputs.
func Encode(w io.Writer, v interface{}, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
