package mcp_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Sumatoshi-tech/iconpack/pkg/mcp"
	"github.com/Sumatoshi-tech/iconpack/pkg/observability"
)

const sampleSVG = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24px" height="24"><path d="M0 0h24v24H0z"/></svg>`

const sampleBundle = `{
  "prefix": "mdi",
  "info": {"name": "Material Design Icons", "total": 1, "height": 24},
  "icons": {"home": {"body": "<path d=\"M10 20v-6h4v6\"/>"}}
}`

// connect starts srv on an in-memory transport and returns a client session.
func connect(t *testing.T, srv *mcp.Server) *mcpsdk.ClientSession {
	t.Helper()

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

	serverDone := make(chan error, 1)

	go func() {
		serverDone <- srv.RunWithTransport(ctx, serverTransport)
	}()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "1.0.0"}, nil)

	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()

		cancel()
		<-serverDone
	})

	return session
}

func callTool(t *testing.T, session *mcpsdk.ClientSession, name string, args map[string]any) *mcpsdk.CallToolResult {
	t.Helper()

	result, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)

	return result
}

func firstText(t *testing.T, result *mcpsdk.CallToolResult) string {
	t.Helper()

	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok, "first content item should be text")

	return text.Text
}

func TestServer_ListToolNames(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerDeps{})

	assert.Equal(t, []string{mcp.ToolNameRender, mcp.ToolNameRenderFromSet, mcp.ToolNameInspect}, srv.ListToolNames())
}

func TestServer_InMemoryTransport_ToolsList(t *testing.T) {
	t.Parallel()

	session := connect(t, mcp.NewServer(mcp.ServerDeps{}))

	toolsResult, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(toolsResult.Tools))
	for _, tool := range toolsResult.Tools {
		names = append(names, tool.Name)
		assert.NotNil(t, tool.InputSchema, "tool %s missing input schema", tool.Name)
	}

	assert.ElementsMatch(t, []string{"icon_render", "iconset_render", "svg_inspect"}, names)
}

func TestServer_IconRender(t *testing.T) {
	t.Parallel()

	session := connect(t, mcp.NewServer(mcp.ServerDeps{}))

	result := callTool(t, session, mcp.ToolNameRender, map[string]any{
		"markup":    sampleSVG,
		"name":      "home-outline",
		"framework": "react",
	})
	require.False(t, result.IsError, firstText(t, result))

	var out mcp.RenderOutput
	require.NoError(t, json.Unmarshal([]byte(firstText(t, result)), &out))

	assert.Equal(t, "HomeOutline", out.Component)
	assert.Equal(t, "react", out.Framework)
	assert.Contains(t, out.Source, "export function HomeOutline(props)")
	assert.Contains(t, out.Source, "{...props}")
	assert.NotContains(t, out.Source, "<?xml")
}

func TestServer_IconRender_Errors(t *testing.T) {
	t.Parallel()

	session := connect(t, mcp.NewServer(mcp.ServerDeps{}))

	tests := []struct {
		name    string
		args    map[string]any
		wantMsg string
	}{
		{
			name:    "empty_markup",
			args:    map[string]any{"markup": "  ", "framework": "vue"},
			wantMsg: "markup parameter is required",
		},
		{
			name:    "unknown_framework",
			args:    map[string]any{"markup": sampleSVG, "framework": "angular"},
			wantMsg: "unknown framework",
		},
		{
			name:    "too_large",
			args:    map[string]any{"markup": strings.Repeat("a", mcp.MaxMarkupInputBytes+1), "framework": "vue"},
			wantMsg: "exceeds maximum size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := callTool(t, session, mcp.ToolNameRender, tt.args)
			assert.True(t, result.IsError)
			assert.Contains(t, firstText(t, result), tt.wantMsg)
		})
	}
}

func TestServer_IconSetRender(t *testing.T) {
	t.Parallel()

	session := connect(t, mcp.NewServer(mcp.ServerDeps{}))

	result := callTool(t, session, mcp.ToolNameRenderFromSet, map[string]any{
		"bundle":    sampleBundle,
		"icon":      "home",
		"framework": "astro",
		"snippet":   true,
	})
	require.False(t, result.IsError, firstText(t, result))

	var out mcp.RenderOutput
	require.NoError(t, json.Unmarshal([]byte(firstText(t, result)), &out))

	assert.Equal(t, "Home", out.Component)
	assert.Equal(t, "astro", out.Framework)
	assert.Contains(t, out.Source, `viewBox="0 0 24 24"`)
	assert.Contains(t, out.Source, "{...props}")
	assert.NotContains(t, out.Source, "Astro.props")
}

func TestServer_IconSetRender_Errors(t *testing.T) {
	t.Parallel()

	session := connect(t, mcp.NewServer(mcp.ServerDeps{}))

	missing := callTool(t, session, mcp.ToolNameRenderFromSet, map[string]any{
		"bundle": sampleBundle, "icon": "account", "framework": "react",
	})
	assert.True(t, missing.IsError)
	assert.Contains(t, firstText(t, missing), "icon not found")

	typo := callTool(t, session, mcp.ToolNameRenderFromSet, map[string]any{
		"bundle": sampleBundle, "icon": "hom", "framework": "react",
	})
	assert.True(t, typo.IsError)
	assert.Contains(t, firstText(t, typo), "did you mean: home?")

	malformed := callTool(t, session, mcp.ToolNameRenderFromSet, map[string]any{
		"bundle": `{"prefix": "x"}`, "icon": "home", "framework": "react",
	})
	assert.True(t, malformed.IsError)
	assert.Contains(t, firstText(t, malformed), "malformed source")
}

func TestServer_IconSetRender_ReusesParsedBundle(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerDeps{})
	session := connect(t, srv)

	for _, fw := range []string{"react", "solid"} {
		result := callTool(t, session, mcp.ToolNameRenderFromSet, map[string]any{
			"bundle": sampleBundle, "icon": "home", "framework": fw,
		})
		require.False(t, result.IsError, firstText(t, result))
	}

	stats := srv.BundleCacheStats()
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, 1, stats.Entries)
}

func TestServer_SvgInspect(t *testing.T) {
	t.Parallel()

	session := connect(t, mcp.NewServer(mcp.ServerDeps{}))

	result := callTool(t, session, mcp.ToolNameInspect, map[string]any{
		"filename": "icons/github.svg",
		"markup":   sampleSVG,
	})
	require.False(t, result.IsError, firstText(t, result))

	var out mcp.InspectOutput
	require.NoError(t, json.Unmarshal([]byte(firstText(t, result)), &out))

	assert.Equal(t, "github", out.ID)
	require.NotNil(t, out.ViewBox)
	assert.Equal(t, "0 0 24 24", *out.ViewBox)
	require.NotNil(t, out.Width)
	assert.Equal(t, uint32(24), *out.Width)
	require.NotNil(t, out.Height)
	assert.Equal(t, uint32(24), *out.Height)
	assert.Empty(t, out.Warning)
}

func TestServer_SvgInspect_Warning(t *testing.T) {
	t.Parallel()

	session := connect(t, mcp.NewServer(mcp.ServerDeps{}))

	result := callTool(t, session, mcp.ToolNameInspect, map[string]any{"markup": "<html><body/></html>"})
	require.False(t, result.IsError)

	var out mcp.InspectOutput
	require.NoError(t, json.Unmarshal([]byte(firstText(t, result)), &out))

	assert.Equal(t, "unknown", out.ID)
	assert.Nil(t, out.ViewBox)
	assert.Contains(t, out.Warning, "partial extraction")
}

func TestServer_Tracing_AppendsTraceID(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	session := connect(t, mcp.NewServer(mcp.ServerDeps{Tracer: tp.Tracer("test")}))

	result := callTool(t, session, mcp.ToolNameInspect, map[string]any{"markup": sampleSVG})
	require.Len(t, result.Content, 2)

	traceText, ok := result.Content[1].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(traceText.Text, "trace_id="))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "mcp.svg_inspect", spans[0].Name())
}

func TestServer_Metrics_RecordsToolCalls(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	red, err := observability.NewREDMetrics(mp.Meter("test"))
	require.NoError(t, err)

	session := connect(t, mcp.NewServer(mcp.ServerDeps{Metrics: red}))

	ok := callTool(t, session, mcp.ToolNameInspect, map[string]any{"markup": sampleSVG})
	require.False(t, ok.IsError)

	failed := callTool(t, session, mcp.ToolNameRender, map[string]any{"markup": sampleSVG, "framework": "angular"})
	require.True(t, failed.IsError)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var requests, errs int64

	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			sum, isSum := m.Data.(metricdata.Sum[int64])
			if !isSum {
				continue
			}

			for _, dp := range sum.DataPoints {
				switch m.Name {
				case "iconpack.requests.total":
					requests += dp.Value
				case "iconpack.errors.total":
					errs += dp.Value
				}
			}
		}
	}

	assert.Equal(t, int64(2), requests)
	assert.Equal(t, int64(1), errs)
}
