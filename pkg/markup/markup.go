// Package markup provides stateless string rewrites over SVG markup used by
// the component code generators: style extraction, JSX attribute casing,
// native-UI tag substitution and root prop injection.
//
// Every function takes markup and returns new markup. None of them validate
// the input; malformed markup degrades to partially rewritten output.
package markup

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	styleBlockRe = regexp.MustCompile(`(?si)<style[^>]*>(.*?)</style>`)

	// classAttrRe matches a bare class attribute name preceded by whitespace.
	classAttrRe = regexp.MustCompile(`(\s)class=`)

	// kebabAttrRe matches lowercase-hyphenated attribute names.
	kebabAttrRe = regexp.MustCompile(`(\s)([a-z]+-[a-z0-9-]+)=`)
)

// ExtractStyles removes every <style> block and returns the remaining
// template together with the block bodies joined by newlines in document order.
func ExtractStyles(content string) (template, styles string) {
	var bodies []string

	template = styleBlockRe.ReplaceAllStringFunc(content, func(block string) string {
		sub := styleBlockRe.FindStringSubmatch(block)
		if len(sub) > 1 {
			bodies = append(bodies, sub[1])
		}

		return ""
	})

	return template, strings.Join(bodies, "\n")
}

// ToJSX rewrites markup into the JSX attribute dialect: class becomes
// className, kebab-case attributes become camelCase except data-* and aria-*,
// and HTML comments become JSX comments.
func ToJSX(content string) string {
	jsx := classAttrRe.ReplaceAllString(content, "${1}className=")

	jsx = kebabAttrRe.ReplaceAllStringFunc(jsx, func(match string) string {
		sub := kebabAttrRe.FindStringSubmatch(match)
		lead, attr := sub[1], sub[2]

		if strings.HasPrefix(attr, "data-") || strings.HasPrefix(attr, "aria-") {
			return match
		}

		return lead + kebabToCamel(attr) + "="
	})

	jsx = strings.ReplaceAll(jsx, "<!--", "{/*")
	jsx = strings.ReplaceAll(jsx, "-->", "*/}")

	return jsx
}

func kebabToCamel(attr string) string {
	parts := strings.Split(attr, "-")

	var sb strings.Builder

	sb.Grow(len(attr))
	sb.WriteString(parts[0])

	for _, part := range parts[1:] {
		if part == "" {
			continue
		}

		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(part[1:])
	}

	return sb.String()
}

// wordSeparators turns hyphens and underscores into word breaks.
var wordSeparators = strings.NewReplacer("-", " ", "_", " ")

// ToPascalCase converts an icon name such as "arrow-left-circle" into
// "ArrowLeftCircle". Words are split on whitespace, hyphens and underscores;
// only the first rune of each word is upper-cased and the rest is kept as is
// ("logo-HTML5" becomes "LogoHTML5").
func ToPascalCase(name string) string {
	var sb strings.Builder

	for _, word := range strings.Fields(wordSeparators.Replace(name)) {
		r, size := utf8.DecodeRuneInString(word)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(word[size:])
	}

	return sb.String()
}

// prologRe matches a leading XML declaration, comments and a DOCTYPE.
var prologRe = regexp.MustCompile(`(?s)^\s*(?:(?:<\?xml[^>]*\?>|<!--.*?-->|<!DOCTYPE[^>]*>)\s*)*`)

// TrimProlog drops everything before the first element: the XML
// declaration, leading comments and any DOCTYPE. Component templates
// cannot contain them.
func TrimProlog(content string) string {
	loc := prologRe.FindStringIndex(content)
	if loc == nil {
		return content
	}

	return content[loc[1]:]
}
