// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/modgraph/modgraph/internal/cueutil"
)

const (
	// FormatCUE is the CUE settings syntax.
	FormatCUE Format = "cue"
	// FormatTOML is the TOML settings syntax.
	FormatTOML Format = "toml"
	// FormatHCL is the HCL settings syntax.
	FormatHCL Format = "hcl"

	// BaseName is the settings file name without extension.
	BaseName = "modgraph"
)

type (
	// Format identifies a settings file syntax.
	Format string

	// Loader reads a settings file.
	Loader interface {
		Load(ctx context.Context, path string) (*Settings, error)
	}

	fileLoader struct {
		maxFileSize int64
	}
)

// Formats returns the supported formats in lookup precedence order.
func Formats() []Format {
	return []Format{FormatCUE, FormatTOML, FormatHCL}
}

// FileName returns the conventional settings file name for the format.
func (f Format) FileName() string { return BaseName + "." + string(f) }

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range Formats() {
		if string(f) == ext {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: .cue, .toml, .hcl)", ErrUnsupportedFormat, path)
}

// Find returns the single settings file in dir.
func Find(dir string) (string, error) {
	var found []string
	for _, f := range Formats() {
		candidate := filepath.Join(dir, f.FileName())
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			found = append(found, candidate)
		}
	}

	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w in %s (looked for %s, %s, %s)", ErrSettingsNotFound, dir,
			FormatCUE.FileName(), FormatTOML.FileName(), FormatHCL.FileName())
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%w in %s: %s", ErrAmbiguousSettings, dir, strings.Join(found, ", "))
	}
}

// NewLoader creates a Loader that reads from the local filesystem.
func NewLoader() Loader {
	return &fileLoader{maxFileSize: cueutil.DefaultMaxFileSize}
}

// Load reads, decodes and validates the settings file at path.
func (l *fileLoader) Load(ctx context.Context, path string) (*Settings, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load settings canceled: %w", ctx.Err())
	default:
	}

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSettingsNotFound, path)
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if err := cueutil.CheckFileSize(data, l.maxFileSize, path); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	s, err := Parse(format, data, path)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		var invalid *InvalidSettingsError
		if errors.As(err, &invalid) {
			invalid.Path = path
		}
		return nil, err
	}
	return s, nil
}

// Parse decodes settings data of the given format. filename is used in
// error messages only.
func Parse(format Format, data []byte, filename string) (*Settings, error) {
	var (
		s   *Settings
		err error
	)
	switch format {
	case FormatCUE:
		s, err = parseCUE(data, filename)
	case FormatTOML:
		s, err = parseTOML(data)
	case FormatHCL:
		s, err = parseHCL(data, filename)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, &ParseError{Path: filename, Err: err}
	}
	return s, nil
}
