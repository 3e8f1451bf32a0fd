package codegen

import (
	"regexp"
	"strings"

	"github.com/Sumatoshi-tech/iconpack/pkg/markup"
)

const bodyIndent = "    "

// svgOpenRe matches the first non-self-closing root open tag.
var svgOpenRe = regexp.MustCompile(`(?s)<svg\b[^>]*[^/]>|<svg>`)

// jsxCSS escapes CSS for a JSX template literal.
var jsxCSS = strings.NewReplacer("\\", "\\\\", "`", "\\`", "${", "\\${")

func renderReact(icon Icon, opts Options) string {
	template, styles := markup.ExtractStyles(icon.Markup)
	body := markup.InjectProps(markup.ToJSX(template), markup.SpreadProps)
	body = embedJSXStyle(body, styles)

	params, header := "props", "import React from 'react';"
	if opts.TypeScript {
		params, header = "props: SVGProps<SVGSVGElement>", "import type { SVGProps } from 'react';"
	}

	code := functionComponent(icon.Name, params, body)
	if opts.Snippet {
		return code
	}

	return esModule(icon.Name, code, header)
}

func renderReactNative(icon Icon, opts Options) string {
	native := markup.ToNative(markup.InjectProps(icon.Markup, markup.SpreadProps))

	params := "props"
	headers := []string{"import React from 'react';", markup.NativeImports(native.Components)}

	if opts.TypeScript {
		params = "props: SvgProps"
		headers = append(headers, "import type { SvgProps } from 'react-native-svg';")
	}

	code := functionComponent(icon.Name, params, native.Markup)
	if opts.Snippet {
		return code
	}

	return esModule(icon.Name, code, headers...)
}

func renderQwik(icon Icon, opts Options) string {
	body := markup.InjectProps(icon.Markup, markup.SpreadProps, markup.KeyAttribute)
	code := functionComponent(icon.Name, "props: QwikIntrinsicElements['svg'], key: string", body)

	if opts.Snippet {
		return code
	}

	return esModule(icon.Name, code, "import type { QwikIntrinsicElements } from '@builder.io/qwik';")
}

func renderSolid(icon Icon, opts Options) string {
	body := markup.InjectProps(icon.Markup, markup.SpreadProps)
	code := functionComponent(icon.Name, "props: JSX.IntrinsicElements['svg']", body)

	if opts.Snippet {
		return code
	}

	return esModule(icon.Name, code, "import type { JSX } from 'solid-js';")
}

func renderAstro(icon Icon, opts Options) string {
	body := markup.InjectProps(icon.Markup, markup.SpreadProps)
	if opts.Snippet {
		return body
	}

	return "---\nconst props = Astro.props;\n---\n\n" + body + "\n"
}

func renderVue(icon Icon, opts Options) string {
	template, styles := markup.ExtractStyles(icon.Markup)
	template = strings.TrimSpace(template)

	if opts.Snippet {
		return template
	}

	var sb strings.Builder

	if opts.TypeScript {
		sb.WriteString("<script setup lang=\"ts\">\n")
	} else {
		sb.WriteString("<script setup>\n")
	}

	sb.WriteString("defineOptions({ name: '" + icon.Name + "' });\n")
	sb.WriteString("</script>\n\n<template>\n")
	sb.WriteString(indent(template, "  "))
	sb.WriteString("\n</template>\n")
	writeStyle(&sb, "<style scoped>", styles)

	return sb.String()
}

func renderSvelte(icon Icon, opts Options) string {
	template, styles := markup.ExtractStyles(icon.Markup)
	template = markup.InjectProps(strings.TrimSpace(template), markup.SvelteProps)

	if opts.Snippet {
		return template
	}

	var sb strings.Builder

	sb.WriteString(template)
	sb.WriteString("\n")
	writeStyle(&sb, "<style>", styles)

	return sb.String()
}

// embedJSXStyle puts styles back as the first child of the root element,
// wrapped in a template literal so CSS braces are not read as JSX.
func embedJSXStyle(body, styles string) string {
	if strings.TrimSpace(styles) == "" {
		return body
	}

	loc := svgOpenRe.FindStringIndex(body)
	if loc == nil {
		return body
	}

	return body[:loc[1]] + "<style>{`" + jsxCSS.Replace(styles) + "`}</style>" + body[loc[1]:]
}

func writeStyle(sb *strings.Builder, open, styles string) {
	styles = strings.TrimSpace(styles)
	if styles == "" {
		return
	}

	sb.WriteString("\n")
	sb.WriteString(open)
	sb.WriteString("\n")
	sb.WriteString(styles)
	sb.WriteString("\n</style>\n")
}

func functionComponent(name, params, body string) string {
	var sb strings.Builder

	sb.WriteString("export function ")
	sb.WriteString(name)
	sb.WriteString("(")
	sb.WriteString(params)
	sb.WriteString(") {\n  return (\n")
	sb.WriteString(indent(body, bodyIndent))
	sb.WriteString("\n  );\n}")

	return sb.String()
}

func esModule(name, code string, headers ...string) string {
	return strings.Join(headers, "\n") + "\n\n" + code + "\n\nexport default " + name + ";\n"
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")

	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = prefix + line
		}
	}

	return strings.Join(lines, "\n")
}
