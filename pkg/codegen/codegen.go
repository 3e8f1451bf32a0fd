// Package codegen renders normalized icons as component source for seven
// front-end frameworks.
//
// Every dialect is one renderFunc over the same Icon value. Renderers share
// the markup package rewrites and keep no state, so identical input and
// options always produce identical text.
package codegen

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/Sumatoshi-tech/iconpack/pkg/markup"
	"github.com/Sumatoshi-tech/iconpack/pkg/model"
)

// ErrUnknownFramework is returned for a framework name outside the supported set.
var ErrUnknownFramework = errors.New("unknown framework")

// Framework identifies a target dialect.
type Framework string

// Supported frameworks.
const (
	React       Framework = "react"
	Vue         Framework = "vue"
	Svelte      Framework = "svelte"
	ReactNative Framework = "react-native"
	Qwik        Framework = "qwik"
	Solid       Framework = "solid"
	Astro       Framework = "astro"
)

// fallbackName is used when an icon name yields no usable identifier.
const fallbackName = "Icon"

// Icon is the renderer input: a component name and a complete SVG document.
type Icon struct {
	Name   string
	Markup string
}

// Options tunes the rendered output.
type Options struct {
	// Snippet drops imports, front matter and the default export, leaving
	// only the renderable part.
	Snippet bool
	// TypeScript adds prop type annotations where the dialect has an
	// untyped form (React, Vue, React Native).
	TypeScript bool
}

type renderFunc func(icon Icon, opts Options) string

var renderers = map[Framework]renderFunc{
	React:       renderReact,
	Vue:         renderVue,
	Svelte:      renderSvelte,
	ReactNative: renderReactNative,
	Qwik:        renderQwik,
	Solid:       renderSolid,
	Astro:       renderAstro,
}

// Frameworks returns every supported framework in a stable order.
func Frameworks() []Framework {
	return []Framework{React, Vue, Svelte, ReactNative, Qwik, Solid, Astro}
}

// ParseFramework resolves a case-insensitive framework name. "rn" and
// "reactnative" are accepted for React Native.
func ParseFramework(name string) (Framework, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	switch normalized {
	case "rn", "reactnative", "react_native":
		return ReactNative, nil
	}

	fw := Framework(normalized)
	if _, ok := renderers[fw]; !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFramework, name, supportedList())
	}

	return fw, nil
}

func supportedList() string {
	names := make([]string, 0, len(renderers))
	for _, fw := range Frameworks() {
		names = append(names, string(fw))
	}

	return strings.Join(names, ", ")
}

// Render produces the source text of icon for fw.
func Render(fw Framework, icon Icon, opts Options) (string, error) {
	render, ok := renderers[fw]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFramework, fw)
	}

	icon.Markup = strings.TrimSpace(markup.TrimProlog(icon.Markup))

	return render(icon, opts), nil
}

// RenderAll renders icon for every supported framework.
func RenderAll(icon Icon, opts Options) map[Framework]string {
	out := make(map[Framework]string, len(renderers))

	for _, fw := range Frameworks() {
		// Frameworks only lists registered renderers.
		out[fw], _ = Render(fw, icon, opts)
	}

	return out
}

// FromEntry builds a renderer input from an icon-set entry. The fragment is
// wrapped into a document sized by the entry, falling back to the defaults.
func FromEntry(name string, entry model.IconEntry, defaultWidth, defaultHeight float64) Icon {
	return Icon{
		Name:   ComponentName(name),
		Markup: entry.ToSVG(defaultWidth, defaultHeight),
	}
}

// FromSvg builds a renderer input from a standalone SVG file.
func FromSvg(icon model.SvgIcon) Icon {
	return Icon{
		Name:   ComponentName(icon.Filename),
		Markup: icon.SVGContent,
	}
}

// ComponentName turns an icon name into an identifier usable as a component
// name. Runes that cannot appear in an identifier separate words, and names
// that would start with a digit get the "Icon" prefix.
func ComponentName(name string) string {
	words := strings.Map(func(r rune) rune {
		if r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}

		return ' '
	}, name)

	pascal := markup.ToPascalCase(words)

	if pascal == "" {
		return fallbackName
	}

	if unicode.IsDigit([]rune(pascal)[0]) {
		return fallbackName + pascal
	}

	return pascal
}

// SupportsTypeScript reports whether opts.TypeScript changes fw's output.
func SupportsTypeScript(fw Framework) bool {
	return slices.Contains([]Framework{React, Vue, ReactNative}, fw)
}

// FileExtension returns the conventional source file extension for fw,
// including the leading dot.
func FileExtension(fw Framework, typeScript bool) string {
	switch fw {
	case Vue:
		return ".vue"
	case Svelte:
		return ".svelte"
	case Astro:
		return ".astro"
	case Qwik, Solid:
		return ".tsx"
	case React, ReactNative:
		if typeScript {
			return ".tsx"
		}
	}

	return ".jsx"
}
