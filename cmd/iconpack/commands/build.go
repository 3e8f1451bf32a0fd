package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/iconpack/pkg/build"
	"github.com/Sumatoshi-tech/iconpack/pkg/config"
	"github.com/Sumatoshi-tech/iconpack/pkg/observability"
	"github.com/Sumatoshi-tech/iconpack/pkg/safeconv"
)

type buildFlags struct {
	iconSetsDir  string
	svglDir      string
	outputDir    string
	svglBasename string
	workers      int
	compress     bool
	manifest     bool
	quiet        bool
}

func newBuildCommand(g *globalOptions) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Encode source directories into archives",
		Long: `Encode every JSON bundle of --iconsets into one IconSet archive per file
and every SVG under --svgl into one SvglCollection archive.

Files that fail to load are reported and skipped. Flags override the
build section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, g, flags)
		},
	}

	cmd.Flags().StringVar(&flags.iconSetsDir, "iconsets", "", "Directory of icon-set JSON bundles")
	cmd.Flags().StringVar(&flags.svglDir, "svgl", "", "Directory of standalone SVG files (recursive)")
	cmd.Flags().StringVarP(&flags.outputDir, "out", "o", config.DefaultOutputDir, "Output directory")
	cmd.Flags().StringVar(&flags.svglBasename, "svgl-name", config.DefaultSvglBasename, "Basename of the SVG collection archive")
	cmd.Flags().IntVar(&flags.workers, "workers", config.DefaultWorkers, "Parallel parsers (0 = CPU count)")
	cmd.Flags().BoolVar(&flags.compress, "compress", false, "Write LZ4-framed archives (.bin.lz4)")
	cmd.Flags().BoolVar(&flags.manifest, "manifest", config.DefaultManifest, "Write manifest.yaml")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress the summary table")

	return cmd
}

// applyBuildFlags overlays explicitly set flags on the config values.
func applyBuildFlags(cmd *cobra.Command, cfg *config.BuildConfig, flags *buildFlags) {
	set := cmd.Flags().Changed

	if set("iconsets") {
		cfg.IconSetsDir = flags.iconSetsDir
	}

	if set("svgl") {
		cfg.SvglDir = flags.svglDir
	}

	if set("out") {
		cfg.OutputDir = flags.outputDir
	}

	if set("svgl-name") {
		cfg.SvglBasename = flags.svglBasename
	}

	if set("workers") {
		cfg.Workers = flags.workers
	}

	if set("compress") {
		cfg.Compress = flags.compress
	}

	if set("manifest") {
		cfg.Manifest = flags.manifest
	}
}

func runBuild(cmd *cobra.Command, g *globalOptions, flags *buildFlags) (err error) {
	sess, err := g.openSession(cmd, observability.ModeCLI)
	if err != nil {
		return err
	}
	defer sess.close()

	ctx := cmd.Context()
	start := time.Now()

	defer func() { sess.track(ctx, "build", start, err) }()

	applyBuildFlags(cmd, &sess.cfg.Build, flags)

	var metrics *observability.BuildMetrics

	if sess.providers.Meter != nil {
		metrics, err = observability.NewBuildMetrics(sess.providers.Meter)
		if err != nil {
			return err
		}
	}

	bc := sess.cfg.Build

	builder, err := build.New(build.Options{
		IconSetsDir:  bc.IconSetsDir,
		SvglDir:      bc.SvglDir,
		OutputDir:    bc.OutputDir,
		SvglBasename: bc.SvglBasename,
		Workers:      bc.Workers,
		Compress:     bc.Compress,
		Manifest:     bc.Manifest,
		Logger:       sess.logger,
		Tracer:       sess.tracer(),
		Metrics:      metrics,
	})
	if err != nil {
		return err
	}

	report, err := builder.Run(ctx)
	if err != nil {
		return err
	}

	if !flags.quiet {
		writeBuildSummary(cmd.OutOrStdout(), report)
	}

	return nil
}

func writeBuildSummary(w io.Writer, report *build.Report) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Archive", "Kind", "Prefix", "Icons", "Size"})

	var totalBytes int64

	for _, entry := range report.Manifest.Archives {
		tw.AppendRow(table.Row{
			entry.File,
			entry.Kind,
			entry.Prefix,
			entry.Icons,
			humanize.Bytes(safeconv.Int64ToUint64(entry.Bytes)),
		})

		totalBytes += entry.Bytes
	}

	tw.AppendFooter(table.Row{
		"Total", "", "",
		report.Manifest.TotalIcons(),
		humanize.Bytes(safeconv.Int64ToUint64(totalBytes)),
	})
	tw.Render()

	warn := color.New(color.FgYellow)
	fail := color.New(color.FgRed)

	for _, warning := range report.Warnings {
		warn.Fprintf(w, "warning: %v\n", warning)
	}

	for _, failure := range report.Failures {
		fail.Fprintf(w, "failed:  %v\n", failure)
	}

	if report.ManifestPath != "" {
		fmt.Fprintf(w, "manifest: %s\n", report.ManifestPath)
	}

	color.New(color.FgGreen).Fprintf(w, "built %d archives in %s\n",
		len(report.Manifest.Archives), report.Duration.Round(time.Millisecond))
}
