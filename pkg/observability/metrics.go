package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricRequestsTotal    = "iconpack.requests.total"
	metricRequestDuration  = "iconpack.request.duration.seconds"
	metricErrorsTotal      = "iconpack.errors.total"
	metricInflightRequests = "iconpack.inflight.requests"

	metricFilesTotal   = "iconpack.ingest.files.total"
	metricArchiveBytes = "iconpack.archive.bytes"
	metricArchiveIcons = "iconpack.archive.icons.total"

	attrOp     = "op"
	attrStatus = "status"
	attrKind   = "kind"

	// StatusOK marks a successful operation.
	StatusOK = "ok"
	// StatusError marks a failed operation.
	StatusError = "error"
	// StatusWarning marks a file loaded with a warning.
	StatusWarning = "warning"
)

// durationBucketBoundaries covers 1ms to 60s: single renders up to full builds.
var durationBucketBoundaries = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60}

// archiveSizeBoundaries covers 1KiB to 64MiB.
var archiveSizeBoundaries = []float64{1 << 10, 16 << 10, 256 << 10, 1 << 20, 4 << 20, 16 << 20, 64 << 20}

// REDMetrics holds the Rate, Error, Duration instruments of commands and MCP tools.
type REDMetrics struct {
	requestsTotal    metric.Int64Counter
	requestDuration  metric.Float64Histogram
	errorsTotal      metric.Int64Counter
	inflightRequests metric.Int64UpDownCounter
}

// NewREDMetrics creates RED metric instruments from the given meter.
func NewREDMetrics(mt metric.Meter) (*REDMetrics, error) {
	reqTotal, err := mt.Int64Counter(metricRequestsTotal,
		metric.WithDescription("Total number of requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRequestsTotal, err)
	}

	reqDuration, err := mt.Float64Histogram(metricRequestDuration,
		metric.WithDescription("Request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRequestDuration, err)
	}

	errTotal, err := mt.Int64Counter(metricErrorsTotal,
		metric.WithDescription("Total number of errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricErrorsTotal, err)
	}

	inflight, err := mt.Int64UpDownCounter(metricInflightRequests,
		metric.WithDescription("Number of in-flight requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricInflightRequests, err)
	}

	return &REDMetrics{
		requestsTotal:    reqTotal,
		requestDuration:  reqDuration,
		errorsTotal:      errTotal,
		inflightRequests: inflight,
	}, nil
}

// RecordRequest records a completed request.
func (rm *REDMetrics) RecordRequest(ctx context.Context, op, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(attrOp, op),
		attribute.String(attrStatus, status),
	)

	rm.requestsTotal.Add(ctx, 1, attrs)
	rm.requestDuration.Record(ctx, duration.Seconds(), attrs)

	if status == StatusError {
		rm.errorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrOp, op)))
	}
}

// TrackInflight increments the in-flight gauge and returns its decrement.
func (rm *REDMetrics) TrackInflight(ctx context.Context, op string) func() {
	attrs := metric.WithAttributes(attribute.String(attrOp, op))
	rm.inflightRequests.Add(ctx, 1, attrs)

	return func() {
		rm.inflightRequests.Add(ctx, -1, attrs)
	}
}

// BuildMetrics counts ingested files and written archives. It satisfies
// the ingest package's Recorder interface.
type BuildMetrics struct {
	filesTotal   metric.Int64Counter
	archiveBytes metric.Int64Histogram
	archiveIcons metric.Int64Counter
}

// NewBuildMetrics creates build instruments from the given meter.
func NewBuildMetrics(mt metric.Meter) (*BuildMetrics, error) {
	files, err := mt.Int64Counter(metricFilesTotal,
		metric.WithDescription("Source files processed, by kind and status"),
		metric.WithUnit("{file}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricFilesTotal, err)
	}

	size, err := mt.Int64Histogram(metricArchiveBytes,
		metric.WithDescription("Size of written archives"),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(archiveSizeBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricArchiveBytes, err)
	}

	icons, err := mt.Int64Counter(metricArchiveIcons,
		metric.WithDescription("Icons encoded into archives"),
		metric.WithUnit("{icon}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricArchiveIcons, err)
	}

	return &BuildMetrics{filesTotal: files, archiveBytes: size, archiveIcons: icons}, nil
}

// RecordFile counts one processed source file.
func (bm *BuildMetrics) RecordFile(ctx context.Context, kind string, failed, warned bool) {
	status := StatusOK

	switch {
	case failed:
		status = StatusError
	case warned:
		status = StatusWarning
	}

	bm.filesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrKind, kind),
		attribute.String(attrStatus, status),
	))
}

// RecordArchive records one written archive.
func (bm *BuildMetrics) RecordArchive(ctx context.Context, kind string, bytes int64, icons int) {
	attrs := metric.WithAttributes(attribute.String(attrKind, kind))

	bm.archiveBytes.Record(ctx, bytes, attrs)
	bm.archiveIcons.Add(ctx, int64(icons), attrs)
}
