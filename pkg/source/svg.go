package source

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/Sumatoshi-tech/iconpack/pkg/model"
)

// UnknownFilename identifies an SVG whose logical name has no usable stem.
const UnknownFilename = "unknown"

// SVGResult is the outcome of parsing a standalone SVG file.
type SVGResult struct {
	// Path is the file the icon was read from, empty for in-memory input.
	Path string
	// Icon is always populated, even when Warning is set.
	Icon *model.SvgIcon
	// Warning wraps ErrPartialExtraction when the root scan found no usable
	// <svg> element. It is informational.
	Warning error
}

// ParseSVG scans content for the first <svg> start tag and records its
// viewBox, width and height. Nested <svg> elements are never inspected.
// Markup errors before the root stop the scan and are reported as a
// warning; the returned icon keeps the original content verbatim.
func ParseSVG(filename, content string) SVGResult {
	icon := &model.SvgIcon{
		Filename:   fileStem(filename),
		SVGContent: content,
	}

	warning := scanRoot(content, icon)
	if warning != nil {
		warning = fmt.Errorf("%w: %s: %w", ErrPartialExtraction, icon.Filename, warning)
	}

	return SVGResult{Icon: icon, Warning: warning}
}

// errNoRoot is reported when the document ends before any <svg> element.
var errNoRoot = errors.New("no <svg> element found")

func scanRoot(content string, icon *model.SvgIcon) error {
	dec := xml.NewDecoder(strings.NewReader(content))
	dec.Strict = false
	dec.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			return errNoRoot
		}

		if err != nil {
			return err
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Space != "" || start.Name.Local != "svg" {
			continue
		}

		for _, attr := range start.Attr {
			if attr.Name.Space != "" {
				continue
			}

			switch attr.Name.Local {
			case "viewBox":
				viewBox := attr.Value
				icon.ViewBox = &viewBox
			case "width":
				icon.Width = ParseDimension(attr.Value)
			case "height":
				icon.Height = ParseDimension(attr.Value)
			}
		}

		return nil
	}
}

// ParseDimension parses an integer SVG length, stripping a trailing unit
// such as "px" or "em". Values that are not integers after stripping are
// reported as absent.
func ParseDimension(raw string) *uint32 {
	value := strings.TrimRightFunc(strings.TrimSpace(raw), isASCIILetter)

	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil
	}

	v := uint32(n)

	return &v
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func fileStem(filename string) string {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return UnknownFilename
	}

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return UnknownFilename
	}

	return stem
}
