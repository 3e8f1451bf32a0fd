// Package mcp implements a Model Context Protocol server exposing icon
// rendering and SVG inspection as MCP tools over stdio transport.
package mcp

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/iconpack/pkg/cache"
	"github.com/Sumatoshi-tech/iconpack/pkg/model"
	"github.com/Sumatoshi-tech/iconpack/pkg/observability"
	"github.com/Sumatoshi-tech/iconpack/pkg/version"
)

const (
	serverName = "iconpack"

	toolCount = 3

	// mcpSpanPrefix prefixes span names and RED metric op labels.
	mcpSpanPrefix = "mcp."

	// bundleCacheBytes bounds the parsed-bundle cache by source text size.
	bundleCacheBytes = 32 << 20

	traceIDMetaKey = "trace_id"
)

// ServerDeps holds injectable dependencies for the MCP server.
// Zero-value fields use production defaults.
type ServerDeps struct {
	// Logger is an optional structured logger. Nil uses slog default.
	Logger *slog.Logger

	// Metrics is an optional RED metrics recorder. Nil disables per-tool metrics.
	Metrics *observability.REDMetrics

	// Tracer is an optional OTel tracer for per-tool-call spans. Nil disables tracing.
	Tracer trace.Tracer
}

// Server wraps the MCP SDK server with the iconpack tool registrations.
type Server struct {
	inner   *mcpsdk.Server
	logger  *slog.Logger
	bundles *cache.LRU[[sha256.Size]byte, *model.IconSet]
	mu      sync.RWMutex
	tools   []string
	metrics *observability.REDMetrics
	tracer  trace.Tracer
}

// NewServer creates a new MCP server with all tools registered.
func NewServer(deps ServerDeps) *Server {
	logger := observability.Component(deps.Logger, "mcp")

	inner := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    serverName,
			Version: version.Version,
		},
		&mcpsdk.ServerOptions{Logger: logger},
	)

	srv := &Server{
		inner:   inner,
		logger:  logger,
		bundles: cache.New[[sha256.Size]byte, *model.IconSet](bundleCacheBytes),
		tools:   make([]string, 0, toolCount),
		metrics: deps.Metrics,
		tracer:  deps.Tracer,
	}

	addTool(srv, ToolNameRender, renderToolDescription, handleRender)
	addTool(srv, ToolNameRenderFromSet, renderFromSetToolDescription, srv.handleRenderFromSet)
	addTool(srv, ToolNameInspect, inspectToolDescription, handleInspect)

	return srv
}

// BundleCacheStats reports the parsed-bundle cache counters.
func (s *Server) BundleCacheStats() cache.Stats {
	return s.bundles.Stats()
}

// ListToolNames returns the sorted names of all registered tools.
func (s *Server) ListToolNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.tools))
	copy(names, s.tools)
	sort.Strings(names)

	return names
}

// Run starts the MCP server on stdio transport. It blocks until the context
// is canceled or the connection closes.
func (s *Server) Run(ctx context.Context) error {
	return s.RunWithTransport(ctx, &mcpsdk.StdioTransport{})
}

// RunWithTransport starts the MCP server on the given transport.
func (s *Server) RunWithTransport(ctx context.Context, transport mcpsdk.Transport) error {
	s.logger.InfoContext(ctx, "mcp server starting", "tools", s.ListToolNames())

	err := s.inner.Run(ctx, transport)

	stats := s.bundles.Stats()
	s.logger.InfoContext(ctx, "mcp server stopped",
		"bundle_cache_entries", stats.Entries, "bundle_cache_hit_rate", stats.HitRate())

	if err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	return nil
}

type toolHandler[Input any] func(context.Context, *mcpsdk.CallToolRequest, Input) (*mcpsdk.CallToolResult, ToolOutput, error)

func addTool[Input any](s *Server, name, description string, handler toolHandler[Input]) {
	mcpsdk.AddTool(s.inner, &mcpsdk.Tool{
		Name:        name,
		Description: description,
	}, mcpsdk.ToolHandlerFor[Input, ToolOutput](withMetrics(s.metrics, name, withTracing(s.tracer, name, handler))))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tools = append(s.tools, name)
}

// withTracing wraps a handler in a server span and appends the trace id to
// the response when the span is sampled.
func withTracing[Input any](tracer trace.Tracer, toolName string, handler toolHandler[Input]) toolHandler[Input] {
	if tracer == nil {
		return handler
	}

	return func(ctx context.Context, req *mcpsdk.CallToolRequest, input Input) (*mcpsdk.CallToolResult, ToolOutput, error) {
		ctx, span := tracer.Start(ctx, mcpSpanPrefix+toolName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attribute.String("mcp.tool", toolName)),
		)
		defer span.End()

		result, output, err := handler(ctx, req, input)

		if err != nil || (result != nil && result.IsError) {
			span.SetStatus(codes.Error, "tool returned an error")
		}

		sc := span.SpanContext()
		if sc.IsSampled() && result != nil {
			result.Content = append(result.Content, &mcpsdk.TextContent{
				Text: fmt.Sprintf("%s=%s", traceIDMetaKey, sc.TraceID().String()),
			})
		}

		return result, output, err
	}
}

// withMetrics wraps a handler to record RED metrics per invocation.
func withMetrics[Input any](metrics *observability.REDMetrics, toolName string, handler toolHandler[Input]) toolHandler[Input] {
	if metrics == nil {
		return handler
	}

	return func(ctx context.Context, req *mcpsdk.CallToolRequest, input Input) (*mcpsdk.CallToolResult, ToolOutput, error) {
		start := time.Now()

		decInflight := metrics.TrackInflight(ctx, mcpSpanPrefix+toolName)
		defer decInflight()

		result, output, err := handler(ctx, req, input)

		status := observability.StatusOK
		if err != nil || (result != nil && result.IsError) {
			status = observability.StatusError
		}

		metrics.RecordRequest(ctx, mcpSpanPrefix+toolName, status, time.Since(start))

		return result, output, err
	}
}

const (
	renderToolDescription = "Render a complete SVG document as a UI component " +
		"(react, vue, svelte, react-native, qwik, solid, astro). " +
		"Returns the component source text."

	renderFromSetToolDescription = "Render one icon of an icon-set JSON bundle as a UI component. " +
		"The icon fragment is wrapped into an SVG document sized by the set defaults."

	inspectToolDescription = "Inspect an SVG document: report the root viewBox, width and height " +
		"the way the archive builder extracts them, plus any extraction warning."
)
