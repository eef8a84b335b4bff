// SPDX-License-Identifier: MPL-2.0

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"
)

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"

	// StyleAuto picks a glamour style from the terminal.
	StyleAuto = "auto"
)

// ErrUnknownFormat is returned for an unrecognized Format.
var ErrUnknownFormat = errors.New("unknown report format")

type (
	// Format selects the report encoding.
	Format string

	// Options configure rendering.
	Options struct {
		Format Format
		// Style is the glamour style for FormatMarkdown ("auto", "dark",
		// "light", "notty", ...). Empty means StyleAuto.
		Style string
		// Width wraps Markdown output. Zero disables wrapping.
		Width int
	}
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown}
}

// Validate returns an error wrapping ErrUnknownFormat if f is not supported.
func (f Format) Validate() error {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown:
		return nil
	default:
		return fmt.Errorf("%w %q (valid: text, json, yaml, markdown)", ErrUnknownFormat, f)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeMarkdown(w io.Writer, md string, opts Options) error {
	rendererOpts := []glamour.TermRendererOption{styleOption(opts.Style)}
	if opts.Width > 0 {
		rendererOpts = append(rendererOpts, glamour.WithWordWrap(opts.Width))
	}

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func styleOption(style string) glamour.TermRendererOption {
	if style == "" || style == StyleAuto {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStandardStyle(style)
}
