// Package output writes redistributed prompt files and renders run reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format defines how a report is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DefaultFormat is the format used when none is configured.
const DefaultFormat = FormatText

// ParseFormat converts a flag or config value to a Format.
// An empty string selects DefaultFormat.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "":
		return DefaultFormat, nil
	case FormatText, FormatYAML, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// IsStructured returns true for machine-readable formats (JSON/YAML).
func (f Format) IsStructured() bool {
	return f == FormatJSON || f == FormatYAML
}

// Encode writes data to w as JSON or YAML.
func Encode(w io.Writer, format Format, data any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(data)
	default:
		return fmt.Errorf("format %s is not structured", format)
	}
}
