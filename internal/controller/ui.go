// Package controller renders counting results for display and export.
package controller

import (
	"context"
	"fmt"
	"strings"

	m "countroo.dev/pkg/countroo/internal/model"
)

// Format selects how a result is rendered.
type Format string

// Available Format values.
const (
	FormatPlain Format = "plain"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
	FormatXML   Format = "xml"
)

// Formats lists every supported Format.
func Formats() []Format {
	return []Format{FormatPlain, FormatTable, FormatJSON, FormatYAML, FormatTOML, FormatXML}
}

// ParseFormat converts a user supplied name into a Format.
func ParseFormat(value string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" {
		return FormatTable, nil
	}

	if name == "yml" {
		return FormatYAML, nil
	}

	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: unsupported format %q", m.ErrConfiguration, value)
}

// DisplayOption is a functional option for Display.
type DisplayOption func(*DisplayConfig)

// DisplayConfig holds rendering settings.
type DisplayConfig struct {
	format  Format
	colored bool
}

// WithFormat selects the output format.
func WithFormat(format Format) DisplayOption {
	return func(c *DisplayConfig) {
		c.format = format
	}
}

// WithColor enables branding colors in table output.
func WithColor(colored bool) DisplayOption {
	return func(c *DisplayConfig) {
		c.colored = colored
	}
}

// UI displays counting results.
type UI interface {
	Display(ctx context.Context, aggregate m.Aggregate, options ...DisplayOption) error
}
