package mcp

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/iconpack/pkg/codegen"
	"github.com/Sumatoshi-tech/iconpack/pkg/model"
	"github.com/Sumatoshi-tech/iconpack/pkg/source"
	"github.com/Sumatoshi-tech/iconpack/pkg/suggest"
)

// Tool name constants.
const (
	ToolNameRender        = "icon_render"
	ToolNameRenderFromSet = "iconset_render"
	ToolNameInspect       = "svg_inspect"
)

// MaxMarkupInputBytes is the maximum accepted size of inline markup or
// bundle input (4 MB).
const MaxMarkupInputBytes = 4 << 20

// Sentinel errors for tool input validation.
var (
	// ErrEmptyMarkup indicates the markup parameter is empty.
	ErrEmptyMarkup = errors.New("markup parameter is required and must not be empty")
	// ErrEmptyBundle indicates the bundle parameter is empty.
	ErrEmptyBundle = errors.New("bundle parameter is required and must not be empty")
	// ErrEmptyIconName indicates the icon parameter is empty.
	ErrEmptyIconName = errors.New("icon parameter is required and must not be empty")
	// ErrInputTooLarge indicates the input exceeds MaxMarkupInputBytes.
	ErrInputTooLarge = errors.New("input exceeds maximum size")
	// ErrIconNotFound indicates the bundle has no icon with the given name.
	ErrIconNotFound = errors.New("icon not found in bundle")
)

// RenderInput is the input schema for the icon_render tool.
type RenderInput struct {
	Framework  string `json:"framework"            jsonschema:"target framework: react vue svelte react-native qwik solid astro"`
	Markup     string `json:"markup"               jsonschema:"complete SVG document"`
	Name       string `json:"name,omitempty"       jsonschema:"component name (default: derived as Icon)"`
	Snippet    bool   `json:"snippet,omitempty"    jsonschema:"omit imports and default export"`
	TypeScript bool   `json:"typescript,omitempty" jsonschema:"emit typed props where the framework has an untyped form"`
}

// RenderFromSetInput is the input schema for the iconset_render tool.
type RenderFromSetInput struct {
	Bundle     string `json:"bundle"               jsonschema:"icon-set JSON bundle text"`
	Framework  string `json:"framework"            jsonschema:"target framework: react vue svelte react-native qwik solid astro"`
	Icon       string `json:"icon"                 jsonschema:"icon key inside the bundle"`
	Snippet    bool   `json:"snippet,omitempty"    jsonschema:"omit imports and default export"`
	TypeScript bool   `json:"typescript,omitempty" jsonschema:"emit typed props where the framework has an untyped form"`
}

// InspectInput is the input schema for the svg_inspect tool.
type InspectInput struct {
	Filename string `json:"filename,omitempty" jsonschema:"logical file name used to derive the icon id"`
	Markup   string `json:"markup"             jsonschema:"SVG document text"`
}

// RenderOutput is the structured result of the render tools.
type RenderOutput struct {
	Component string `json:"component"`
	Framework string `json:"framework"`
	Source    string `json:"source"`
}

// InspectOutput is the structured result of svg_inspect.
type InspectOutput struct {
	ID      string  `json:"id"`
	ViewBox *string `json:"viewbox,omitempty"`
	Width   *uint32 `json:"width,omitempty"`
	Height  *uint32 `json:"height,omitempty"`
	Warning string  `json:"warning,omitempty"`
}

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}

func checkSize(input string) error {
	if len(input) > MaxMarkupInputBytes {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(input), MaxMarkupInputBytes)
	}

	return nil
}

func renderResult(fw codegen.Framework, icon codegen.Icon, opts codegen.Options) (*mcpsdk.CallToolResult, ToolOutput, error) {
	src, err := codegen.Render(fw, icon, opts)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(RenderOutput{Component: icon.Name, Framework: string(fw), Source: src})
}

func handleRender(
	_ context.Context, _ *mcpsdk.CallToolRequest, input RenderInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if strings.TrimSpace(input.Markup) == "" {
		return errorResult(ErrEmptyMarkup)
	}

	if err := checkSize(input.Markup); err != nil {
		return errorResult(err)
	}

	fw, err := codegen.ParseFramework(input.Framework)
	if err != nil {
		return errorResult(err)
	}

	icon := codegen.Icon{Name: codegen.ComponentName(input.Name), Markup: input.Markup}

	return renderResult(fw, icon, codegen.Options{Snippet: input.Snippet, TypeScript: input.TypeScript})
}

func (s *Server) handleRenderFromSet(
	_ context.Context, _ *mcpsdk.CallToolRequest, input RenderFromSetInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	switch {
	case strings.TrimSpace(input.Bundle) == "":
		return errorResult(ErrEmptyBundle)
	case input.Icon == "":
		return errorResult(ErrEmptyIconName)
	}

	if err := checkSize(input.Bundle); err != nil {
		return errorResult(err)
	}

	fw, err := codegen.ParseFramework(input.Framework)
	if err != nil {
		return errorResult(err)
	}

	set, err := s.parseBundle(input.Bundle)
	if err != nil {
		return errorResult(err)
	}

	entry, ok := set.Icons[input.Icon]
	if !ok {
		hint := suggest.Hint(suggest.Closest(input.Icon, set.SortedNames(), suggest.DefaultLimit))

		return errorResult(fmt.Errorf("%w: %q in %q%s", ErrIconNotFound, input.Icon, set.Prefix, hint))
	}

	height := float64(set.Info.HeightOrDefault())
	icon := codegen.FromEntry(input.Icon, entry, height, height)

	return renderResult(fw, icon, codegen.Options{Snippet: input.Snippet, TypeScript: input.TypeScript})
}

// parseBundle parses bundle text, reusing the result of an earlier call with
// identical text.
func (s *Server) parseBundle(bundle string) (*model.IconSet, error) {
	key := sha256.Sum256([]byte(bundle))

	if set, ok := s.bundles.Get(key); ok {
		return set, nil
	}

	set, err := source.ParseIconSet([]byte(bundle))
	if err != nil {
		return nil, err
	}

	s.bundles.Put(key, set, int64(len(bundle)))

	return set, nil
}

func handleInspect(
	_ context.Context, _ *mcpsdk.CallToolRequest, input InspectInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if strings.TrimSpace(input.Markup) == "" {
		return errorResult(ErrEmptyMarkup)
	}

	if err := checkSize(input.Markup); err != nil {
		return errorResult(err)
	}

	res := source.ParseSVG(input.Filename, input.Markup)

	out := InspectOutput{
		ID:      res.Icon.Filename,
		ViewBox: res.Icon.ViewBox,
		Width:   res.Icon.Width,
		Height:  res.Icon.Height,
	}

	if res.Warning != nil {
		out.Warning = res.Warning.Error()
	}

	return jsonResult(out)
}
