package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Sumatoshi-tech/iconpack/pkg/codegen"
	"github.com/Sumatoshi-tech/iconpack/pkg/model"
	"github.com/Sumatoshi-tech/iconpack/pkg/observability"
	"github.com/Sumatoshi-tech/iconpack/pkg/source"
	"github.com/Sumatoshi-tech/iconpack/pkg/suggest"
)

// Sentinel errors for the gen command.
var (
	// ErrIconNotInSet indicates --icon names no icon of the --set bundle.
	ErrIconNotInSet = errors.New("icon not found in set")
	// ErrMissingIconName indicates --set was given without --icon.
	ErrMissingIconName = errors.New("--icon is required with --set")
	// ErrGeneratedDrift indicates --check found differences.
	ErrGeneratedDrift = errors.New("generated source differs from file")
	// ErrAllNeedsDir indicates --all was given without --out-dir.
	ErrAllNeedsDir = errors.New("--all requires --out-dir")
)

const (
	generatedFilePerm = 0o644
	outputDirPerm     = 0o755
)

type genFlags struct {
	setPath    string
	iconName   string
	svgPath    string
	name       string
	framework  string
	typeScript bool
	snippet    bool
	all        bool
	output     string
	outDir     string
	check      string
}

func newGenCommand(g *globalOptions) *cobra.Command {
	flags := &genFlags{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Render one icon as a framework component",
		Long: `Render one icon as component source.

The icon comes either from an icon-set JSON bundle (--set with --icon) or a
standalone SVG file (--svg). The output goes to stdout, to --output, or, with
--all, to one file per framework under --out-dir.

--check compares the rendered source with an existing file and fails when
they differ, printing a line diff.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(cmd, g, flags)
		},
	}

	cmd.Flags().StringVar(&flags.setPath, "set", "", "Icon-set JSON bundle")
	cmd.Flags().StringVar(&flags.iconName, "icon", "", "Icon key inside --set")
	cmd.Flags().StringVar(&flags.svgPath, "svg", "", "Standalone SVG file")
	cmd.Flags().StringVar(&flags.name, "name", "", "Component name (default: derived from the icon name)")
	cmd.Flags().StringVarP(&flags.framework, "framework", "f", "", "Target framework (default from config)")
	cmd.Flags().BoolVar(&flags.typeScript, "typescript", false, "Typed props where the framework has an untyped form")
	cmd.Flags().BoolVar(&flags.snippet, "snippet", false, "Omit imports and default export")
	cmd.Flags().BoolVar(&flags.all, "all", false, "Render every framework")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().StringVar(&flags.outDir, "out-dir", "", "Directory for --all output")
	cmd.Flags().StringVar(&flags.check, "check", "", "Compare with this file instead of writing")

	cmd.MarkFlagsOneRequired("set", "svg")
	cmd.MarkFlagsMutuallyExclusive("set", "svg")
	cmd.MarkFlagsMutuallyExclusive("all", "output")
	cmd.MarkFlagsMutuallyExclusive("all", "check")

	return cmd
}

func runGen(cmd *cobra.Command, g *globalOptions, flags *genFlags) (err error) {
	sess, err := g.openSession(cmd, observability.ModeCLI)
	if err != nil {
		return err
	}
	defer sess.close()

	ctx, span := sess.tracer().Start(cmd.Context(), "iconpack.gen")
	start := time.Now()

	defer func() {
		sess.track(ctx, "gen", start, err)
		span.End()
	}()

	opts := codegen.Options{
		Snippet:    flags.snippet || (!cmd.Flags().Changed("snippet") && sess.cfg.Codegen.Snippet),
		TypeScript: flags.typeScript || (!cmd.Flags().Changed("typescript") && sess.cfg.Codegen.TypeScript),
	}

	icon, err := loadGenIcon(flags)
	if err != nil {
		return err
	}

	if flags.name != "" {
		icon.Name = codegen.ComponentName(flags.name)
	}

	if flags.all {
		return writeAllFrameworks(cmd.OutOrStdout(), flags.outDir, icon, opts)
	}

	fwName := flags.framework
	if fwName == "" {
		fwName = sess.cfg.Codegen.Framework
	}

	fw, err := codegen.ParseFramework(fwName)
	if err != nil {
		return err
	}

	if opts.TypeScript && !codegen.SupportsTypeScript(fw) {
		sess.logger.WarnContext(ctx, "typescript has no effect for this framework", "framework", fw)
	}

	span.SetAttributes(
		attribute.String("codegen.framework", string(fw)),
		attribute.String("codegen.component", icon.Name),
	)

	src, err := codegen.Render(fw, icon, opts)
	if err != nil {
		return err
	}

	sess.logger.DebugContext(ctx, "rendered component",
		"framework", fw, "component", icon.Name, "bytes", len(src))

	switch {
	case flags.check != "":
		return checkGenerated(cmd.OutOrStdout(), flags.check, src)
	case flags.output != "":
		return writeGenerated(flags.output, src)
	default:
		_, err = io.WriteString(cmd.OutOrStdout(), src)

		return err
	}
}

func loadGenIcon(flags *genFlags) (codegen.Icon, error) {
	if flags.svgPath != "" {
		res, err := source.LoadSVG(flags.svgPath)
		if err != nil {
			return codegen.Icon{}, err
		}

		return codegen.FromSvg(*res.Icon), nil
	}

	if flags.iconName == "" {
		return codegen.Icon{}, ErrMissingIconName
	}

	set, err := source.LoadIconSet(flags.setPath)
	if err != nil {
		return codegen.Icon{}, err
	}

	entry, ok := set.Icons[flags.iconName]
	if !ok {
		hint := suggest.Hint(suggest.Closest(flags.iconName, set.SortedNames(), suggest.DefaultLimit))

		return codegen.Icon{}, fmt.Errorf("%w: %q in %s%s", ErrIconNotInSet, flags.iconName, set.Prefix, hint)
	}

	return iconFromSet(set, flags.iconName, entry), nil
}

func iconFromSet(set *model.IconSet, name string, entry model.IconEntry) codegen.Icon {
	height := float64(set.Info.HeightOrDefault())

	return codegen.FromEntry(name, entry, height, height)
}

func writeAllFrameworks(w io.Writer, dir string, icon codegen.Icon, opts codegen.Options) error {
	if dir == "" {
		return ErrAllNeedsDir
	}

	err := os.MkdirAll(dir, outputDirPerm)
	if err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	rendered := codegen.RenderAll(icon, opts)

	for _, fw := range codegen.Frameworks() {
		path := filepath.Join(dir, string(fw), icon.Name+codegen.FileExtension(fw, opts.TypeScript))

		err = writeGenerated(path, rendered[fw])
		if err != nil {
			return err
		}

		fmt.Fprintln(w, path)
	}

	return nil
}

func writeGenerated(path, src string) error {
	err := os.MkdirAll(filepath.Dir(path), outputDirPerm)
	if err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	err = os.WriteFile(path, []byte(src), generatedFilePerm)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func checkGenerated(w io.Writer, path, src string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if string(existing) == src {
		color.New(color.FgGreen).Fprintf(w, "%s is up to date\n", path)

		return nil
	}

	fmt.Fprintf(w, "--- %s\n+++ generated\n", path)
	writeLineDiff(w, string(existing), src)

	return fmt.Errorf("%w: %s", ErrGeneratedDrift, path)
}

// writeLineDiff prints a line-level diff with -, + and space prefixes.
func writeLineDiff(w io.Writer, from, to string) {
	dmp := diffmatchpatch.New()
	src, dst, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(src, dst, false), lines)

	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)

	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			line = strings.TrimSuffix(line, "\n")

			switch d.Type {
			case diffmatchpatch.DiffDelete:
				removed.Fprintf(w, "-%s\n", line)
			case diffmatchpatch.DiffInsert:
				added.Fprintf(w, "+%s\n", line)
			case diffmatchpatch.DiffEqual:
				fmt.Fprintf(w, " %s\n", line)
			}
		}
	}
}
