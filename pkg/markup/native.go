package markup

import (
	"regexp"
	"strings"
)

// nativeTag maps an SVG element name onto its react-native-svg component.
type nativeTag struct {
	to      string
	open    *regexp.Regexp
	closing *regexp.Regexp
}

// nativeTags is ordered; the order is also the import order.
var nativeTags = buildNativeTags([][2]string{
	{"svg", "Svg"},
	{"path", "Path"},
	{"g", "G"},
	{"circle", "Circle"},
	{"rect", "Rect"},
	{"line", "Line"},
	{"polyline", "Polyline"},
	{"polygon", "Polygon"},
	{"ellipse", "Ellipse"},
	{"text", "Text"},
	{"tspan", "Tspan"},
	{"textPath", "TextPath"},
	{"defs", "Defs"},
	{"use", "Use"},
	{"symbol", "Symbol"},
	{"linearGradient", "LinearGradient"},
	{"radialGradient", "RadialGradient"},
	{"stop", "Stop"},
})

var (
	classNameAttrRe = regexp.MustCompile(`\s+className=(?:"[^"]*"|'[^']*'|\{[^}]*\})`)
	hrefAttrRe      = regexp.MustCompile(`(\s)(?:xlink:)?href=`)
)

func buildNativeTags(pairs [][2]string) []nativeTag {
	tags := make([]nativeTag, 0, len(pairs))

	for _, p := range pairs {
		tags = append(tags, nativeTag{
			to:      p[1],
			open:    regexp.MustCompile(`<` + p[0] + `([\s/>])`),
			closing: regexp.MustCompile(`</` + p[0] + `\s*>`),
		})
	}

	return tags
}

// NativeResult is the outcome of ToNative.
type NativeResult struct {
	// Markup is the rewritten component markup.
	Markup string
	// Components lists the component names that occur in Markup, in table order.
	Components []string
}

// ToNative rewrites markup for react-native-svg. The input first goes
// through ToJSX, then every known SVG element is renamed to its capitalized
// component, className attributes are dropped and href becomes xlinkHref.
func ToNative(content string) NativeResult {
	out := ToJSX(content)

	var used []string

	for _, tag := range nativeTags {
		if !tag.open.MatchString(out) && !tag.closing.MatchString(out) {
			continue
		}

		used = append(used, tag.to)
		out = tag.open.ReplaceAllString(out, "<"+tag.to+"${1}")
		out = tag.closing.ReplaceAllString(out, "</"+tag.to+">")
	}

	out = classNameAttrRe.ReplaceAllString(out, "")
	out = hrefAttrRe.ReplaceAllString(out, "${1}xlinkHref=")

	return NativeResult{Markup: out, Components: used}
}

// NativeImports renders the react-native-svg import line for the given
// components. Svg is always the default import.
func NativeImports(components []string) string {
	var named []string

	for _, c := range components {
		if c != "Svg" {
			named = append(named, c)
		}
	}

	var sb strings.Builder

	sb.WriteString("import Svg")

	if len(named) > 0 {
		sb.WriteString(", { ")
		sb.WriteString(strings.Join(named, ", "))
		sb.WriteString(" }")
	}

	sb.WriteString(" from 'react-native-svg';")

	return sb.String()
}
