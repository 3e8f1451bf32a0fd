package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/iconpack/pkg/model"
)

var sampleIcon = Icon{
	Name:   "ArrowLeft",
	Markup: `<svg viewBox="0 0 24 24"><path stroke-width="2" class="x"/></svg>`,
}

func TestRender_React(t *testing.T) {
	t.Parallel()

	got, err := Render(React, sampleIcon, Options{})
	require.NoError(t, err)

	want := `import React from 'react';

export function ArrowLeft(props) {
  return (
    <svg viewBox="0 0 24 24" {...props}><path strokeWidth="2" className="x"/></svg>
  );
}

export default ArrowLeft;
`
	assert.Equal(t, want, got)
}

func TestRender_ReactEmbedsStyleAsTemplateLiteral(t *testing.T) {
	t.Parallel()

	icon := Icon{
		Name:   "Logo",
		Markup: "<svg viewBox=\"0 0 8 8\"><style>.a{fill:red} .b::after{content:`${x}`}</style><path class=\"a\"/></svg>",
	}

	got, err := Render(React, icon, Options{Snippet: true})
	require.NoError(t, err)

	assert.Contains(t, got,
		"<svg viewBox=\"0 0 8 8\" {...props}><style>{`.a{fill:red} .b::after{content:\\`\\${x}\\`}`}</style>"+
			"<path className=\"a\"/></svg>")
	assert.NotContains(t, got, "<style>.a")
}

func TestRender_ReactSelfClosingRootWithoutStyle(t *testing.T) {
	t.Parallel()

	got, err := Render(React, Icon{Name: "Dot", Markup: "<svg/>"}, Options{Snippet: true})
	require.NoError(t, err)
	assert.NotContains(t, got, "<style>")
}

func TestRender_ReactTypeScriptSnippet(t *testing.T) {
	t.Parallel()

	got, err := Render(React, sampleIcon, Options{Snippet: true, TypeScript: true})
	require.NoError(t, err)

	want := `export function ArrowLeft(props: SVGProps<SVGSVGElement>) {
  return (
    <svg viewBox="0 0 24 24" {...props}><path strokeWidth="2" className="x"/></svg>
  );
}`
	assert.Equal(t, want, got)

	full, err := Render(React, sampleIcon, Options{TypeScript: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(full, "import type { SVGProps } from 'react';\n"))
}

func TestRender_ReactNative(t *testing.T) {
	t.Parallel()

	got, err := Render(ReactNative, sampleIcon, Options{})
	require.NoError(t, err)

	want := `import React from 'react';
import Svg, { Path } from 'react-native-svg';

export function ArrowLeft(props) {
  return (
    <Svg viewBox="0 0 24 24" {...props}><Path strokeWidth="2"/></Svg>
  );
}

export default ArrowLeft;
`
	assert.Equal(t, want, got)

	typed, err := Render(ReactNative, sampleIcon, Options{TypeScript: true})
	require.NoError(t, err)
	assert.Contains(t, typed, "import type { SvgProps } from 'react-native-svg';")
	assert.Contains(t, typed, "ArrowLeft(props: SvgProps)")
}

func TestRender_Qwik(t *testing.T) {
	t.Parallel()

	got, err := Render(Qwik, sampleIcon, Options{})
	require.NoError(t, err)

	want := `import type { QwikIntrinsicElements } from '@builder.io/qwik';

export function ArrowLeft(props: QwikIntrinsicElements['svg'], key: string) {
  return (
    <svg viewBox="0 0 24 24" {...props} key={key}><path stroke-width="2" class="x"/></svg>
  );
}

export default ArrowLeft;
`
	assert.Equal(t, want, got)
}

func TestRender_Solid(t *testing.T) {
	t.Parallel()

	got, err := Render(Solid, sampleIcon, Options{Snippet: true})
	require.NoError(t, err)

	want := `export function ArrowLeft(props: JSX.IntrinsicElements['svg']) {
  return (
    <svg viewBox="0 0 24 24" {...props}><path stroke-width="2" class="x"/></svg>
  );
}`
	assert.Equal(t, want, got)

	full, err := Render(Solid, sampleIcon, Options{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(full, "import type { JSX } from 'solid-js';\n\n"))
}

func TestRender_Astro(t *testing.T) {
	t.Parallel()

	got, err := Render(Astro, sampleIcon, Options{})
	require.NoError(t, err)

	want := `---
const props = Astro.props;
---

<svg viewBox="0 0 24 24" {...props}><path stroke-width="2" class="x"/></svg>
`
	assert.Equal(t, want, got)

	snippet, err := Render(Astro, sampleIcon, Options{Snippet: true})
	require.NoError(t, err)
	assert.Equal(t, `<svg viewBox="0 0 24 24" {...props}><path stroke-width="2" class="x"/></svg>`, snippet)
}

func TestRender_VueScopedStyle(t *testing.T) {
	t.Parallel()

	icon := Icon{
		Name:   "Logo",
		Markup: `<svg viewBox="0 0 1 1"><style>.cls{fill:red}</style><path class="cls"/></svg>`,
	}

	got, err := Render(Vue, icon, Options{TypeScript: true})
	require.NoError(t, err)

	want := `<script setup lang="ts">
defineOptions({ name: 'Logo' });
</script>

<template>
  <svg viewBox="0 0 1 1"><path class="cls"/></svg>
</template>

<style scoped>
.cls{fill:red}
</style>
`
	assert.Equal(t, want, got)

	snippet, err := Render(Vue, icon, Options{Snippet: true})
	require.NoError(t, err)
	assert.Equal(t, `<svg viewBox="0 0 1 1"><path class="cls"/></svg>`, snippet)
}

func TestRender_VueWithoutStyle(t *testing.T) {
	t.Parallel()

	got, err := Render(Vue, sampleIcon, Options{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "<script setup>\n"))
	assert.NotContains(t, got, "<style")
	assert.Contains(t, got, `class="x"`)
}

func TestRender_SvelteUnscopedStyle(t *testing.T) {
	t.Parallel()

	icon := Icon{
		Name:   "Logo",
		Markup: `<svg viewBox="0 0 1 1"><style>.cls{fill:red}</style><path class="cls"/></svg>`,
	}

	got, err := Render(Svelte, icon, Options{})
	require.NoError(t, err)

	want := `<svg viewBox="0 0 1 1" {...$$props}><path class="cls"/></svg>

<style>
.cls{fill:red}
</style>
`
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "scoped")
}

func TestRender_StripsProlog(t *testing.T) {
	t.Parallel()

	icon := Icon{
		Name:   "Doc",
		Markup: "<?xml version=\"1.0\"?>\n<!-- exported -->\n<svg><g/></svg>\n",
	}

	for _, fw := range Frameworks() {
		got, err := Render(fw, icon, Options{Snippet: true})
		require.NoError(t, err)
		assert.NotContains(t, got, "<?xml", fw)
		assert.NotContains(t, got, "exported", fw)
	}
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	for _, fw := range Frameworks() {
		for _, opts := range []Options{{}, {Snippet: true}, {TypeScript: true}} {
			first, err := Render(fw, sampleIcon, opts)
			require.NoError(t, err)

			second, err := Render(fw, sampleIcon, opts)
			require.NoError(t, err)

			assert.Equal(t, first, second, fw)
		}
	}
}

func TestRender_MalformedMarkupDoesNotFail(t *testing.T) {
	t.Parallel()

	icon := Icon{Name: "Broken", Markup: `<svg class=><path stroke-width <g></svg`}

	for _, fw := range Frameworks() {
		got, err := Render(fw, icon, Options{})
		require.NoError(t, err)
		assert.NotEmpty(t, got)
	}
}

func TestRender_UnknownFramework(t *testing.T) {
	t.Parallel()

	_, err := Render(Framework("angular"), sampleIcon, Options{})
	require.ErrorIs(t, err, ErrUnknownFramework)
}

func TestRenderAll(t *testing.T) {
	t.Parallel()

	out := RenderAll(sampleIcon, Options{Snippet: true})

	require.Len(t, out, 7)

	for _, fw := range Frameworks() {
		assert.NotEmpty(t, out[fw], fw)
	}
}

func TestParseFramework(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Framework
	}{
		{in: "react", want: React},
		{in: "Vue", want: Vue},
		{in: " svelte ", want: Svelte},
		{in: "react-native", want: ReactNative},
		{in: "rn", want: ReactNative},
		{in: "qwik", want: Qwik},
		{in: "solid", want: Solid},
		{in: "ASTRO", want: Astro},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFramework(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFramework("angular")
	require.ErrorIs(t, err, ErrUnknownFramework)
	assert.Contains(t, err.Error(), "react-native")
}

func TestComponentName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ArrowLeftCircle", ComponentName("arrow-left-circle"))
	assert.Equal(t, "ReactDark", ComponentName("react_dark"))
	assert.Equal(t, "Icon", ComponentName(""))
	assert.Equal(t, "Icon1password", ComponentName("1password"))
	assert.Equal(t, "NextJs", ComponentName("next.js"))
	assert.Equal(t, "MdiHome", ComponentName("mdi:home"))
	assert.Equal(t, "LogoHTML5", ComponentName("logo-HTML5"))
	assert.Equal(t, "CaféIcon", ComponentName("café-icon"))
}

func TestFromEntry(t *testing.T) {
	t.Parallel()

	width := 32.0
	icon := FromEntry("home-outline", model.IconEntry{Body: `<path d="M0"/>`, Width: &width}, 24, 24)

	assert.Equal(t, "HomeOutline", icon.Name)
	assert.Equal(t,
		`<svg xmlns="http://www.w3.org/2000/svg" width="32" height="24" viewBox="0 0 32 24"><path d="M0"/></svg>`,
		icon.Markup)
}

func TestFromSvg(t *testing.T) {
	t.Parallel()

	icon := FromSvg(model.SvgIcon{Filename: "github_dark", SVGContent: "<svg/>"})

	assert.Equal(t, Icon{Name: "GithubDark", Markup: "<svg/>"}, icon)
}

func TestSupportsTypeScript(t *testing.T) {
	t.Parallel()

	assert.True(t, SupportsTypeScript(React))
	assert.True(t, SupportsTypeScript(Vue))
	assert.False(t, SupportsTypeScript(Astro))
}

func TestFileExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fw   Framework
		ts   bool
		want string
	}{
		{React, false, ".jsx"},
		{React, true, ".tsx"},
		{ReactNative, false, ".jsx"},
		{ReactNative, true, ".tsx"},
		{Vue, true, ".vue"},
		{Svelte, false, ".svelte"},
		{Astro, false, ".astro"},
		{Qwik, false, ".tsx"},
		{Solid, false, ".tsx"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FileExtension(tt.fw, tt.ts), "%s ts=%v", tt.fw, tt.ts)
	}
}
