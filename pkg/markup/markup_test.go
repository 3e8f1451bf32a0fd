package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStyles(t *testing.T) {
	t.Parallel()

	t.Run("single_block", func(t *testing.T) {
		t.Parallel()

		doc := `<svg><style>.cls{fill:red}</style><path class="cls"/></svg>`

		template, styles := ExtractStyles(doc)

		assert.Equal(t, `<svg><path class="cls"/></svg>`, template)
		assert.Equal(t, ".cls{fill:red}", styles)

		// Re-inserting the block at its original position restores the document.
		rebuilt := strings.Replace(template, "<path", "<style>"+styles+"</style><path", 1)
		assert.Equal(t, doc, rebuilt)
	})

	t.Run("multiple_blocks_case_insensitive_multiline", func(t *testing.T) {
		t.Parallel()

		doc := "<svg><STYLE type=\"text/css\">\n.a{}\n</STYLE><g/><style>.b{}</style></svg>"

		template, styles := ExtractStyles(doc)

		assert.Equal(t, "<svg><g/></svg>", template)
		assert.Equal(t, "\n.a{}\n\n.b{}", styles)
	})

	t.Run("no_style", func(t *testing.T) {
		t.Parallel()

		template, styles := ExtractStyles(`<svg/>`)

		assert.Equal(t, `<svg/>`, template)
		assert.Empty(t, styles)
	})
}

func TestToJSX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "attributes",
			in:   `<path stroke-width="2" class="x" data-foo="y"/>`,
			want: `<path strokeWidth="2" className="x" data-foo="y"/>`,
		},
		{
			name: "aria_passthrough",
			in:   `<svg aria-hidden="true" fill-rule="evenodd">`,
			want: `<svg aria-hidden="true" fillRule="evenodd">`,
		},
		{
			name: "multi_segment",
			in:   `<text font-variant-east-asian="normal" stroke-dasharray-2="1">`,
			want: `<text fontVariantEastAsian="normal" strokeDasharray2="1">`,
		},
		{
			name: "comments",
			in:   `<g><!-- hi --></g>`,
			want: `<g>{/* hi */}</g>`,
		},
		{
			name: "namespaced_untouched",
			in:   `<use xlink:href="#a" xml:space="preserve"/>`,
			want: `<use xlink:href="#a" xml:space="preserve"/>`,
		},
		{
			name: "data_class_not_renamed",
			in:   `<g data-class="a"/>`,
			want: `<g data-class="a"/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ToJSX(tt.in))
		})
	}
}

func TestToJSX_Idempotent(t *testing.T) {
	t.Parallel()

	once := ToJSX(`<svg class="a" stroke-linecap="round"><path fill-opacity=".5"/></svg>`)

	assert.Equal(t, once, ToJSX(once))
}

func TestToJSX_UnbalancedMarkupDoesNotPanic(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		_ = ToJSX(`<svg stroke-width <path class= -->`)
	})
}

func TestToPascalCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "arrow-left-circle", want: "ArrowLeftCircle"},
		{in: "", want: ""},
		{in: "home", want: "Home"},
		{in: "react_dark", want: "ReactDark"},
		{in: "icon2x", want: "Icon2x"},
		{in: "logo-HTML5", want: "LogoHTML5"},
		{in: "ABC", want: "ABC"},
		{in: "café-icon", want: "CaféIcon"},
		{in: "élan", want: "Élan"},
		{in: "mdi:home", want: "Mdi:home"},
		{in: " a--b ", want: "AB"},
		{in: "2-fa", want: "2Fa"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToPascalCase(tt.in), tt.in)
	}
}

func TestToNative(t *testing.T) {
	t.Parallel()

	in := `<svg viewBox="0 0 24 24" class="icon"><g><path stroke-width="2" d="M0"/><use href="#a"/></g></svg>`

	res := ToNative(in)

	assert.Equal(t,
		`<Svg viewBox="0 0 24 24"><G><Path strokeWidth="2" d="M0"/><Use xlinkHref="#a"/></G></Svg>`,
		res.Markup)
	assert.Equal(t, []string{"Svg", "Path", "G", "Use"}, res.Components)
}

func TestToNative_NameCollisions(t *testing.T) {
	t.Parallel()

	in := `<svg><text>a<textPath xlink:href="#p">b</textPath></text><linearGradient><stop/></linearGradient><line/></svg>`

	res := ToNative(in)

	assert.Equal(t,
		`<Svg><Text>a<TextPath xlinkHref="#p">b</TextPath></Text>`+
			`<LinearGradient><Stop/></LinearGradient><Line/></Svg>`,
		res.Markup)
	assert.Equal(t, []string{"Svg", "Line", "Text", "TextPath", "LinearGradient", "Stop"}, res.Components)
}

func TestNativeImports(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "import Svg from 'react-native-svg';", NativeImports([]string{"Svg"}))
	assert.Equal(t, "import Svg, { Path, G } from 'react-native-svg';", NativeImports([]string{"Svg", "Path", "G"}))
	assert.Equal(t, "import Svg, { Path } from 'react-native-svg';", NativeImports([]string{"Path"}))
}

func TestInjectProps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		in           string
		placeholders []string
		want         string
	}{
		{
			name:         "spread",
			in:           `<svg viewBox="0 0 24 24"><path/></svg>`,
			placeholders: []string{SpreadProps},
			want:         `<svg viewBox="0 0 24 24" {...props}><path/></svg>`,
		},
		{
			name:         "spread_and_key",
			in:           `<svg a="1"><svg b="2"/></svg>`,
			placeholders: []string{SpreadProps, KeyAttribute},
			want:         `<svg a="1" {...props} key={key}><svg b="2"/></svg>`,
		},
		{
			name:         "bare_root",
			in:           `<svg><g/></svg>`,
			placeholders: []string{SpreadProps},
			want:         `<svg {...props}><g/></svg>`,
		},
		{
			name:         "multiline_root",
			in:           "<svg\n  width=\"1\"\n>",
			placeholders: []string{SpreadProps},
			want:         "<svg\n  width=\"1\" {...props}>",
		},
		{
			name:         "self_closing",
			in:           `<svg width="1"/>`,
			placeholders: []string{SpreadProps},
			want:         `<svg width="1" {...props}/>`,
		},
		{
			name:         "no_root",
			in:           `<path/>`,
			placeholders: []string{SpreadProps},
			want:         `<path/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := InjectProps(tt.in, tt.placeholders...)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrimProlog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare", in: `<svg/>`, want: `<svg/>`},
		{
			name: "declaration",
			in:   "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<svg/>",
			want: `<svg/>`,
		},
		{
			name: "comment_and_doctype",
			in:   "<!-- Generator: Tool\n 1.0 -->\n<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\">\n<svg><!-- keep --></svg>",
			want: `<svg><!-- keep --></svg>`,
		},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, TrimProlog(tt.in))
		})
	}
}
