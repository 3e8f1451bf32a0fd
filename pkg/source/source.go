// Package source turns raw icon source files into the normalized model.
//
// Two front ends exist: JSON bundles (one file, many icons, shared metadata)
// and standalone SVG files (one file, one icon). Failures are scoped to a
// single file; callers processing batches are expected to skip and warn.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/Sumatoshi-tech/iconpack/pkg/model"
	"github.com/Sumatoshi-tech/iconpack/pkg/textutil"
)

// Error taxonomy.
var (
	// ErrMalformedSource indicates a JSON bundle with missing or mistyped required fields.
	ErrMalformedSource = errors.New("malformed source")
	// ErrUnreadableFile indicates the file could not be read as UTF-8 text.
	ErrUnreadableFile = errors.New("unreadable file")
	// ErrPartialExtraction indicates the SVG root scan produced nothing usable.
	// It is a warning and never fails a file.
	ErrPartialExtraction = errors.New("partial extraction")
)

// File extensions used to select candidate files.
const (
	ExtJSON = ".json"
	ExtSVG  = ".svg"
)

// readText reads path and checks that it holds UTF-8 text.
func readText(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, path, err)
	}

	if textutil.IsBinary(data) || !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s: not valid UTF-8 text", ErrUnreadableFile, path)
	}

	return data, nil
}

// LoadIconSet reads and parses a JSON bundle from disk.
func LoadIconSet(path string) (*model.IconSet, error) {
	data, err := readText(path)
	if err != nil {
		return nil, err
	}

	set, err := ParseIconSet(textutil.TrimBOM(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return set, nil
}

// LoadSVG reads a standalone SVG file from disk. Only I/O and encoding
// problems are errors; markup problems are reported via SVGResult.Warning.
func LoadSVG(path string) (*SVGResult, error) {
	data, err := readText(path)
	if err != nil {
		return nil, err
	}

	res := ParseSVG(filepath.Base(path), string(data))
	res.Path = path

	return &res, nil
}
