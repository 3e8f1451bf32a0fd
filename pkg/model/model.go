// Package model defines the normalized in-memory representation of icon
// sources shared by the binary encoder and the code generator.
package model

import (
	"slices"
	"strconv"
	"strings"
)

// DefaultHeight is the icon-box height used when an icon set does not declare one.
const DefaultHeight = 16

// svgNamespace is the namespace written on wrapped fragments.
const svgNamespace = "http://www.w3.org/2000/svg"

// Author identifies who made an icon set.
type Author struct {
	Name string  `json:"name"`
	URL  *string `json:"url,omitempty"`
}

// License describes the licensing terms of an icon set.
// SPDX is not checked against the SPDX registry.
type License struct {
	Title string  `json:"title"`
	SPDX  string  `json:"spdx"`
	URL   *string `json:"url,omitempty"`
}

// IconSetInfo is the metadata record shared by every icon in a set.
type IconSetInfo struct {
	Name     string   `json:"name"`
	Total    uint32   `json:"total"`
	Version  *string  `json:"version,omitempty"`
	Author   *Author  `json:"author,omitempty"`
	License  *License `json:"license,omitempty"`
	Height   *uint32  `json:"height,omitempty"`
	Category *string  `json:"category,omitempty"`
	Palette  *bool    `json:"palette,omitempty"`
}

// HeightOrDefault returns the declared height, or DefaultHeight when absent.
func (i IconSetInfo) HeightOrDefault() uint32 {
	if i.Height == nil {
		return DefaultHeight
	}

	return *i.Height
}

// PaletteOrDefault returns the declared palette flag, or false when absent.
func (i IconSetInfo) PaletteOrDefault() bool {
	return i.Palette != nil && *i.Palette
}

// IconEntry is one icon of a set. Body is an SVG fragment without the outer
// <svg> element. Nil dimensions mean "use the set default", not zero.
type IconEntry struct {
	Body   string   `json:"body"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// Dimensions resolves the entry's box against the given defaults.
func (e IconEntry) Dimensions(defaultWidth, defaultHeight float64) (width, height float64) {
	width, height = defaultWidth, defaultHeight

	if e.Width != nil {
		width = *e.Width
	}

	if e.Height != nil {
		height = *e.Height
	}

	return width, height
}

// ToSVG wraps the fragment into a standalone SVG document sized by the
// entry's own dimensions, falling back to the given defaults.
func (e IconEntry) ToSVG(defaultWidth, defaultHeight float64) string {
	width, height := e.Dimensions(defaultWidth, defaultHeight)
	w := formatNumber(width)
	h := formatNumber(height)

	var sb strings.Builder

	sb.Grow(len(e.Body) + len(svgNamespace) + 64)
	sb.WriteString(`<svg xmlns="`)
	sb.WriteString(svgNamespace)
	sb.WriteString(`" width="`)
	sb.WriteString(w)
	sb.WriteString(`" height="`)
	sb.WriteString(h)
	sb.WriteString(`" viewBox="0 0 `)
	sb.WriteString(w)
	sb.WriteByte(' ')
	sb.WriteString(h)
	sb.WriteString(`">`)
	sb.WriteString(e.Body)
	sb.WriteString(`</svg>`)

	return sb.String()
}

// IconSet is a parsed JSON bundle: many icons sharing one metadata record.
// Icons is an unordered mapping; encoders sort it explicitly.
type IconSet struct {
	Prefix       string               `json:"prefix"`
	Info         IconSetInfo          `json:"info"`
	LastModified *uint64              `json:"lastModified,omitempty"`
	Icons        map[string]IconEntry `json:"icons"`
}

// SortedNames returns the icon keys in lexicographic byte order.
func (s *IconSet) SortedNames() []string {
	names := make([]string, 0, len(s.Icons))
	for name := range s.Icons {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// TotalMismatch reports whether the declared total differs from the number
// of icons actually present. The mismatch is informational only.
func (s *IconSet) TotalMismatch() bool {
	return int(s.Info.Total) != len(s.Icons)
}

// SvgIcon is a standalone SVG file. SVGContent is the full document.
type SvgIcon struct {
	Filename   string  `json:"filename"`
	SVGContent string  `json:"svg_content"`
	ViewBox    *string `json:"viewbox,omitempty"`
	Width      *uint32 `json:"width,omitempty"`
	Height     *uint32 `json:"height,omitempty"`
}

// SortSvgIcons returns a copy of icons ordered by filename, then by content
// so that duplicate filenames still order independently of input order.
func SortSvgIcons(icons []SvgIcon) []SvgIcon {
	sorted := slices.Clone(icons)
	slices.SortFunc(sorted, func(a, b SvgIcon) int {
		if c := strings.Compare(a.Filename, b.Filename); c != 0 {
			return c
		}

		return strings.Compare(a.SVGContent, b.SVGContent)
	})

	return sorted
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
