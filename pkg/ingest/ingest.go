// Package ingest loads whole source directories into the normalized model.
//
// Files are discovered sequentially, then parsed in parallel by a bounded
// worker pool. A file that fails to load is recorded as a Failure and
// skipped; it never aborts the batch. Results keep discovery order, which is
// lexical by path, so the outcome does not depend on worker scheduling.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/Sumatoshi-tech/iconpack/pkg/model"
	"github.com/Sumatoshi-tech/iconpack/pkg/source"
)

// ErrDuplicateID marks an SVG file skipped because an earlier file in
// discovery order has the same stem.
var ErrDuplicateID = errors.New("duplicate icon id")

// Kinds reported to a Recorder.
const (
	KindIconSet = "iconset"
	KindSvg     = "svg"
)

// Recorder receives one call per processed file.
type Recorder interface {
	RecordFile(ctx context.Context, kind string, failed, warned bool)
}

// Options configures a batch load.
type Options struct {
	// Workers bounds parallel parsing. Zero means runtime.NumCPU().
	Workers int
	// Logger receives per-file warnings and failures. Nil means slog.Default().
	Logger *slog.Logger
	// Recorder is optional.
	Recorder Recorder
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return max(1, runtime.NumCPU())
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}

// Failure is a file that could not be loaded.
type Failure struct {
	Path string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// IconSetFile is a successfully parsed JSON bundle.
type IconSetFile struct {
	Path string
	Set  *model.IconSet
}

// IconSetBatch is the outcome of LoadIconSets.
type IconSetBatch struct {
	Sets     []IconSetFile
	Failures []Failure
}

// SvgBatch is the outcome of LoadSvgCollection. Warnings hold files whose
// root attributes could not be extracted; their icons are still included.
type SvgBatch struct {
	Icons    []model.SvgIcon
	Paths    []string
	Warnings []Failure
	Failures []Failure
}

// LoadIconSets parses every .json file directly inside dir.
func LoadIconSets(ctx context.Context, dir string, opts Options) (*IconSetBatch, error) {
	paths, err := collectFiles(dir, source.ExtJSON, false)
	if err != nil {
		return nil, err
	}

	outcomes, err := runPool(ctx, paths, opts.workers(), source.LoadIconSet)
	if err != nil {
		return nil, err
	}

	log := opts.logger()
	batch := &IconSetBatch{}

	for i, out := range outcomes {
		path := paths[i]

		if opts.Recorder != nil {
			opts.Recorder.RecordFile(ctx, KindIconSet, out.err != nil, false)
		}

		if out.err != nil {
			log.WarnContext(ctx, "skipping icon set", "path", path, "error", out.err)
			batch.Failures = append(batch.Failures, Failure{Path: path, Err: out.err})

			continue
		}

		if out.value.TotalMismatch() {
			log.DebugContext(ctx, "declared total differs from icon count",
				"path", path, "prefix", out.value.Prefix,
				"total", out.value.Info.Total, "icons", len(out.value.Icons))
		}

		batch.Sets = append(batch.Sets, IconSetFile{Path: path, Set: out.value})
	}

	return batch, nil
}

// LoadSvgCollection parses every .svg file under dir, recursively.
func LoadSvgCollection(ctx context.Context, dir string, opts Options) (*SvgBatch, error) {
	paths, err := collectFiles(dir, source.ExtSVG, true)
	if err != nil {
		return nil, err
	}

	outcomes, err := runPool(ctx, paths, opts.workers(), source.LoadSVG)
	if err != nil {
		return nil, err
	}

	log := opts.logger()
	batch := &SvgBatch{}
	owners := make(map[string]string, len(outcomes))

	for i, out := range outcomes {
		path := paths[i]
		warned := out.err == nil && out.value.Warning != nil

		var duplicateOf string
		if out.err == nil {
			duplicateOf = owners[out.value.Icon.Filename]
		}

		if opts.Recorder != nil {
			opts.Recorder.RecordFile(ctx, KindSvg, out.err != nil, warned || duplicateOf != "")
		}

		if out.err != nil {
			log.WarnContext(ctx, "skipping svg", "path", path, "error", out.err)
			batch.Failures = append(batch.Failures, Failure{Path: path, Err: out.err})

			continue
		}

		if duplicateOf != "" {
			err := fmt.Errorf("%w: %q already loaded from %s", ErrDuplicateID, out.value.Icon.Filename, duplicateOf)
			log.WarnContext(ctx, "skipping svg", "path", path, "error", err)
			batch.Warnings = append(batch.Warnings, Failure{Path: path, Err: err})

			continue
		}

		owners[out.value.Icon.Filename] = path

		if warned {
			log.WarnContext(ctx, "svg root attributes not extracted", "path", path, "error", out.value.Warning)
			batch.Warnings = append(batch.Warnings, Failure{Path: path, Err: out.value.Warning})
		}

		batch.Icons = append(batch.Icons, *out.value.Icon)
		batch.Paths = append(batch.Paths, path)
	}

	return batch, nil
}

// collectFiles lists regular files with the given extension (case-insensitive).
// Hidden directories are skipped when walking recursively.
func collectFiles(root, ext string, recursive bool) ([]string, error) {
	var files []string

	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", root, err)
		}

		for _, entry := range entries {
			if entry.Type().IsRegular() && hasExt(entry.Name(), ext) {
				files = append(files, filepath.Join(root, entry.Name()))
			}
		}

		return files, nil
	}

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}

			return nil
		}

		if entry.Type().IsRegular() && hasExt(entry.Name(), ext) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return files, nil
}

func hasExt(name, ext string) bool {
	return strings.EqualFold(filepath.Ext(name), ext)
}

type outcome[T any] struct {
	value T
	err   error
}

type job struct {
	index int
	path  string
}

// runPool applies load to every path with at most workers goroutines.
// outcomes[i] belongs to paths[i].
func runPool[T any](ctx context.Context, paths []string, workers int, load func(string) (T, error)) ([]outcome[T], error) {
	outcomes := make([]outcome[T], len(paths))
	jobs := make(chan job, workers)

	var wg sync.WaitGroup

	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()

			for j := range jobs {
				value, err := load(j.path)
				outcomes[j.index] = outcome[T]{value: value, err: err}
			}
		}()
	}

	var cancelled error

dispatch:
	for i, path := range paths {
		if cancelled = ctx.Err(); cancelled != nil {
			break
		}

		select {
		case <-ctx.Done():
			cancelled = ctx.Err()

			break dispatch
		case jobs <- job{index: i, path: path}:
		}
	}

	close(jobs)
	wg.Wait()

	if cancelled != nil {
		return nil, fmt.Errorf("ingest cancelled: %w", cancelled)
	}

	return outcomes, nil
}
