package markup

import "regexp"

// Spread placeholders injected into the root element.
const (
	SpreadProps  = "{...props}"
	KeyAttribute = "key={key}"
	SvelteProps  = "{...$$props}"
)

// rootOpenRe matches the first <svg> start tag, attributes in group 1 and an
// optional self-closing slash in group 2.
var rootOpenRe = regexp.MustCompile(`(?s)<svg(\s[^>]*?)?\s*(/?)>`)

// InjectProps inserts the given placeholders at the end of the first <svg>
// start tag. Everything else is left untouched; markup without an <svg>
// start tag is returned as is.
func InjectProps(content string, placeholders ...string) string {
	loc := rootOpenRe.FindStringSubmatchIndex(content)
	if loc == nil {
		return content
	}

	attrs := ""
	if loc[2] >= 0 {
		attrs = content[loc[2]:loc[3]]
	}

	slash := content[loc[4]:loc[5]]

	tag := "<svg" + attrs
	for _, p := range placeholders {
		tag += " " + p
	}

	tag += slash + ">"

	return content[:loc[0]] + tag + content[loc[1]:]
}
