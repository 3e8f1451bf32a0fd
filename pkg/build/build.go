// Package build turns source directories into archive files.
//
// A build ingests the JSON bundle directory and the SVG directory, encodes
// one IconSet archive per bundle and one combined SvglCollection archive,
// writes them to the output directory and, optionally, a manifest listing
// what was written. Per-file failures are collected in the report and never
// abort the build.
package build

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Sumatoshi-tech/iconpack/pkg/archive"
	"github.com/Sumatoshi-tech/iconpack/pkg/config"
	"github.com/Sumatoshi-tech/iconpack/pkg/ingest"
	"github.com/Sumatoshi-tech/iconpack/pkg/observability"
	"github.com/Sumatoshi-tech/iconpack/pkg/persist"
	"github.com/Sumatoshi-tech/iconpack/pkg/version"
)

// ErrNoSources is returned when neither source directory is configured.
var ErrNoSources = errors.New("no source directory configured")

// ErrArchiveNameCollision is returned when two archives would land in the
// same output file. Names are compared case-insensitively.
var ErrArchiveNameCollision = errors.New("archive name collision")

const outputDirPerm = 0o755

// Options configures a build.
type Options struct {
	// IconSetsDir holds JSON bundles. Empty skips icon-set archives.
	IconSetsDir string
	// SvglDir holds standalone SVG files. Empty skips the SVG archive.
	SvglDir   string
	OutputDir string
	// SvglBasename names the SVG archive. Empty means config.DefaultSvglBasename.
	SvglBasename string
	Workers      int
	Compress     bool
	Manifest     bool

	Logger  *slog.Logger
	Tracer  trace.Tracer
	Metrics *observability.BuildMetrics
}

// Report is the outcome of Run.
type Report struct {
	Manifest persist.Manifest
	Warnings []ingest.Failure
	Failures []ingest.Failure
	// ManifestPath is empty when no manifest was written.
	ManifestPath string
	Duration     time.Duration
}

// Builder runs builds with fixed options.
type Builder struct {
	opts   Options
	logger *slog.Logger
	tracer trace.Tracer
	codec  persist.ArchiveCodec
}

// New validates opts and returns a Builder.
func New(opts Options) (*Builder, error) {
	if opts.IconSetsDir == "" && opts.SvglDir == "" {
		return nil, ErrNoSources
	}

	if strings.TrimSpace(opts.SvglBasename) == "" {
		opts.SvglBasename = config.DefaultSvglBasename
	}

	tracer := opts.Tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer("build")
	}

	return &Builder{
		opts:   opts,
		logger: observability.Component(opts.Logger, "build"),
		tracer: tracer,
		codec:  persist.CodecFor(opts.Compress),
	}, nil
}

// Run executes the build. Both source directories are ingested before the
// first archive is written, so a name collision leaves the output untouched.
func (b *Builder) Run(ctx context.Context) (report *Report, err error) {
	start := time.Now()

	ctx, span := b.tracer.Start(ctx, "iconpack.build")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		span.End()
	}()

	report = &Report{Manifest: persist.Manifest{Version: version.Version}}

	var sets *ingest.IconSetBatch

	if b.opts.IconSetsDir != "" {
		sets, err = b.loadIconSets(ctx)
		if err != nil {
			return nil, err
		}

		report.Failures = append(report.Failures, sets.Failures...)
	}

	var svgs *ingest.SvgBatch

	if b.opts.SvglDir != "" {
		svgs, err = b.loadSvgCollection(ctx)
		if err != nil {
			return nil, err
		}

		report.Warnings = append(report.Warnings, svgs.Warnings...)
		report.Failures = append(report.Failures, svgs.Failures...)
	}

	err = b.checkArchiveNames(sets, svgs)
	if err != nil {
		return nil, err
	}

	err = os.MkdirAll(b.opts.OutputDir, outputDirPerm)
	if err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	if sets != nil {
		err = b.writeIconSets(ctx, sets, report)
		if err != nil {
			return nil, err
		}
	}

	if svgs != nil {
		err = b.writeSvgCollection(ctx, svgs, report)
		if err != nil {
			return nil, err
		}
	}

	for _, failure := range report.Failures {
		report.Manifest.Failures = append(report.Manifest.Failures, failure.Path)
	}

	report.Manifest.Sort()

	if b.opts.Manifest {
		persister := persist.NewManifestPersister()

		err = persister.Save(b.opts.OutputDir, &report.Manifest)
		if err != nil {
			return nil, err
		}

		report.ManifestPath = persister.Path(b.opts.OutputDir)
	}

	report.Duration = time.Since(start)

	span.SetAttributes(
		attribute.Int("build.archives", len(report.Manifest.Archives)),
		attribute.Int("build.icons", report.Manifest.TotalIcons()),
		attribute.Int("build.failures", len(report.Failures)),
	)

	b.logger.InfoContext(ctx, "build finished",
		"archives", len(report.Manifest.Archives),
		"icons", report.Manifest.TotalIcons(),
		"warnings", len(report.Warnings),
		"failures", len(report.Failures),
		"duration", report.Duration,
	)

	return report, nil
}

func (b *Builder) ingestOptions() ingest.Options {
	opts := ingest.Options{Workers: b.opts.Workers, Logger: b.logger}
	if b.opts.Metrics != nil {
		opts.Recorder = b.opts.Metrics
	}

	return opts
}

func (b *Builder) loadIconSets(ctx context.Context) (*ingest.IconSetBatch, error) {
	ctx, span := b.tracer.Start(ctx, "iconpack.build.iconsets",
		trace.WithAttributes(attribute.String("build.dir", b.opts.IconSetsDir)))
	defer span.End()

	batch, err := ingest.LoadIconSets(ctx, b.opts.IconSetsDir, b.ingestOptions())
	if err != nil {
		return nil, fmt.Errorf("load icon sets: %w", err)
	}

	span.SetAttributes(attribute.Int("build.sets", len(batch.Sets)))

	return batch, nil
}

func (b *Builder) loadSvgCollection(ctx context.Context) (*ingest.SvgBatch, error) {
	ctx, span := b.tracer.Start(ctx, "iconpack.build.svgl",
		trace.WithAttributes(attribute.String("build.dir", b.opts.SvglDir)))
	defer span.End()

	batch, err := ingest.LoadSvgCollection(ctx, b.opts.SvglDir, b.ingestOptions())
	if err != nil {
		return nil, fmt.Errorf("load svg collection: %w", err)
	}

	span.SetAttributes(attribute.Int("build.icons", len(batch.Icons)))

	return batch, nil
}

// checkArchiveNames fails when two archives resolve to the same output file.
func (b *Builder) checkArchiveNames(sets *ingest.IconSetBatch, svgs *ingest.SvgBatch) error {
	owners := make(map[string]string)

	claim := func(basename, owner string) error {
		file := basename + b.codec.Extension()
		key := strings.ToLower(file)

		if prev, ok := owners[key]; ok {
			return fmt.Errorf("%w: %s and %s both write %s", ErrArchiveNameCollision, prev, owner, file)
		}

		owners[key] = owner

		return nil
	}

	if sets != nil {
		for _, file := range sets.Sets {
			err := claim(archiveBasename(file.Path), file.Path)
			if err != nil {
				return err
			}
		}
	}

	if svgs != nil {
		return claim(b.opts.SvglBasename, b.opts.SvglDir)
	}

	return nil
}

func (b *Builder) writeIconSets(ctx context.Context, batch *ingest.IconSetBatch, report *Report) error {
	for _, file := range batch.Sets {
		set := file.Set

		written, err := persist.WriteArchive(b.opts.OutputDir, archiveBasename(file.Path), b.codec, archive.EncodeIconSet(set))
		if err != nil {
			return err
		}

		b.record(ctx, archive.KindIconSet, written, len(set.Icons))

		report.Manifest.Add(persist.ManifestEntry{
			Kind:         archive.KindIconSet,
			File:         filepath.Base(written.Path),
			Bytes:        written.Bytes,
			Icons:        len(set.Icons),
			Prefix:       set.Prefix,
			Name:         set.Info.Name,
			Total:        set.Info.Total,
			LastModified: set.LastModified,
		})
	}

	return nil
}

func (b *Builder) writeSvgCollection(ctx context.Context, batch *ingest.SvgBatch, report *Report) error {
	written, err := persist.WriteArchive(b.opts.OutputDir, b.opts.SvglBasename, b.codec, archive.EncodeSvgCollection(batch.Icons))
	if err != nil {
		return err
	}

	b.record(ctx, archive.KindSvgl, written, len(batch.Icons))

	report.Manifest.Add(persist.ManifestEntry{
		Kind:  archive.KindSvgl,
		File:  filepath.Base(written.Path),
		Bytes: written.Bytes,
		Icons: len(batch.Icons),
	})

	return nil
}

func (b *Builder) record(ctx context.Context, kind archive.Kind, written persist.WrittenArchive, icons int) {
	if b.opts.Metrics != nil {
		b.opts.Metrics.RecordArchive(ctx, string(kind), written.Bytes, icons)
	}

	b.logger.DebugContext(ctx, "archive written", "kind", kind, "path", written.Path, "bytes", written.Bytes, "icons", icons)
}

// archiveBasename names an icon-set archive after its source file.
func archiveBasename(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
