// Package api renders command results for the terminal.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format selects how command results are rendered.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formatter renders command results in one fixed format. The root
// command builds a single Formatter from the --output flag and hands
// it to subcommands through the service context.
type Formatter struct {
	format Format
	out    io.Writer
}

// NewFormatter returns a stdout Formatter. Unrecognized format names
// fall back to yaml.
func NewFormatter(format string) *Formatter {
	f := Format(format)
	if f != FormatJSON && f != FormatYAML {
		f = FormatYAML
	}
	return &Formatter{format: f, out: os.Stdout}
}

// Format reports the formatter's output format.
func (f *Formatter) Format() Format {
	return f.format
}

// Print renders data to the formatter's writer.
func (f *Formatter) Print(data any) error {
	return f.Fprint(f.out, data)
}

// Fprint renders data to w.
func (f *Formatter) Fprint(w io.Writer, data any) error {
	switch f.format {
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
		return fmt.Errorf("unknown output format: %s", f.format)
	}
}
