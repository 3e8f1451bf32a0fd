package observability

import (
	"context"

	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// ResourceFor exposes buildResource for testing.
func ResourceFor(cfg Config) (*resource.Resource, error) {
	return buildResource(cfg)
}

// RootSampled reports whether the sampler resolved from cfg keeps a root
// span with the given trace id.
func RootSampled(cfg Config, traceID trace.TraceID) bool {
	result := selectSampler(cfg).ShouldSample(sdktrace.SamplingParameters{
		ParentContext: context.Background(),
		TraceID:       traceID,
		Name:          "iconpack.build",
		Kind:          trace.SpanKindInternal,
	})

	return result.Decision == sdktrace.RecordAndSample
}
