package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/iconpack/pkg/archive"
	"github.com/Sumatoshi-tech/iconpack/pkg/observability"
	"github.com/Sumatoshi-tech/iconpack/pkg/persist"
	"github.com/Sumatoshi-tech/iconpack/pkg/suggest"
)

// Sentinel errors for the inspect command.
var (
	// ErrUnknownKind indicates an unsupported --kind value.
	ErrUnknownKind = errors.New("unknown archive kind")
	// ErrIDNotFound indicates --id names no icon of the archive.
	ErrIDNotFound = errors.New("id not found in archive")
)

const kindAuto = "auto"

type inspectFlags struct {
	kind string
	id   string
	json bool
}

func newInspectCommand(g *globalOptions) *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect <archive>",
		Short: "Print the contents of an archive",
		Long: `Print the header and icon ids of an archive, or one icon with --id.

The archive kind is taken from --kind, else from the manifest next to the
file, else from the file name: the configured SVG collection basename is an
svgl archive, anything else an icon set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, g, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.kind, "kind", kindAuto, "Archive kind: auto, iconset, svgl")
	cmd.Flags().StringVar(&flags.id, "id", "", "Print one icon")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Print as JSON")

	return cmd
}

func runInspect(cmd *cobra.Command, g *globalOptions, flags *inspectFlags, path string) (err error) {
	sess, err := g.openSession(cmd, observability.ModeCLI)
	if err != nil {
		return err
	}
	defer sess.close()

	ctx, span := sess.tracer().Start(cmd.Context(), "iconpack.inspect")
	start := time.Now()

	defer func() {
		sess.track(ctx, "inspect", start, err)
		span.End()
	}()

	kind, err := resolveKind(flags.kind, path, sess.cfg.Build.SvglBasename)
	if err != nil {
		return err
	}

	data, err := persist.ReadArchive(path)
	if err != nil {
		return err
	}

	sess.logger.DebugContext(ctx, "archive loaded", "path", path, "kind", kind, "bytes", len(data))

	out := cmd.OutOrStdout()

	if flags.json {
		return writeInspectJSON(out, kind, data, flags.id)
	}

	switch {
	case kind == archive.KindIconSet && flags.id != "":
		return printIcon(out, data, flags.id)
	case kind == archive.KindIconSet:
		return printIconSet(out, data)
	case flags.id != "":
		return printSvgl(out, data, flags.id)
	default:
		return printSvgCollection(out, data)
	}
}

// resolveKind picks the archive kind for path.
func resolveKind(flag, path, svglBasename string) (archive.Kind, error) {
	switch archive.Kind(flag) {
	case archive.KindIconSet, archive.KindSvgl:
		return archive.Kind(flag), nil
	case kindAuto, "":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, flag)
	}

	file := filepath.Base(path)

	manifest, err := persist.NewManifestPersister().Load(filepath.Dir(path))
	if err == nil {
		for _, entry := range manifest.Archives {
			if entry.File == file {
				return entry.Kind, nil
			}
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	stem := strings.TrimSuffix(strings.TrimSuffix(file, persist.LZ4Extension), persist.RawExtension)
	if stem == svglBasename {
		return archive.KindSvgl, nil
	}

	return archive.KindIconSet, nil
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	return tw
}

func printIconSet(w io.Writer, data []byte) error {
	summary, err := archive.ReadIconSet(data)
	if err != nil {
		return err
	}

	tw := newTable(w)
	tw.AppendRows([]table.Row{
		{"Prefix", summary.Prefix},
		{"Name", summary.Name},
		{"Total", summary.Total},
		{"Icons", len(summary.IDs)},
		{"Version", summary.Version},
		{"Author", summary.Author},
		{"License", summary.License},
		{"Height", summary.Height},
		{"Category", summary.Category},
		{"Palette", summary.Palette},
	})
	tw.Render()

	for _, id := range summary.IDs {
		fmt.Fprintln(w, id)
	}

	return nil
}

func printIcon(w io.Writer, data []byte, id string) error {
	rec, found, err := archive.LookupIcon(data, id)
	if err != nil {
		return err
	}

	if !found {
		summary, err := archive.ReadIconSet(data)
		if err != nil {
			return err
		}

		return idNotFound(id, summary.IDs)
	}

	tw := newTable(w)
	tw.AppendRows([]table.Row{
		{"ID", rec.ID},
		{"Width", rec.Width},
		{"Height", rec.Height},
	})
	tw.Render()

	fmt.Fprintln(w, rec.Body)

	return nil
}

func printSvgCollection(w io.Writer, data []byte) error {
	ids, err := archive.ReadSvgCollection(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%d icons\n", len(ids))

	for _, id := range ids {
		fmt.Fprintln(w, id)
	}

	return nil
}

func printSvgl(w io.Writer, data []byte, id string) error {
	rec, found, err := archive.LookupSvgl(data, id)
	if err != nil {
		return err
	}

	if !found {
		ids, err := archive.ReadSvgCollection(data)
		if err != nil {
			return err
		}

		return idNotFound(id, ids)
	}

	tw := newTable(w)
	tw.AppendRows([]table.Row{
		{"ID", rec.ID},
		{"Filename", rec.Filename},
		{"ViewBox", rec.ViewBox},
		{"Width", rec.Width},
		{"Height", rec.Height},
	})
	tw.Render()

	fmt.Fprintln(w, rec.SVGContent)

	return nil
}

func idNotFound(id string, ids []string) error {
	return fmt.Errorf("%w: %q%s", ErrIDNotFound, id, suggest.Hint(suggest.Closest(id, ids, suggest.DefaultLimit)))
}

// svgCollectionDoc is the JSON shape of an svgl archive listing.
type svgCollectionDoc struct {
	Icons []string `json:"icons"`
}

func writeInspectJSON(w io.Writer, kind archive.Kind, data []byte, id string) error {
	doc, err := inspectDocument(kind, data, id)
	if err != nil {
		return err
	}

	return persist.NewJSONCodec().Encode(w, doc)
}

func inspectDocument(kind archive.Kind, data []byte, id string) (any, error) {
	switch {
	case kind == archive.KindIconSet && id != "":
		rec, found, err := archive.LookupIcon(data, id)
		if err != nil || found {
			return rec, err
		}

		summary, err := archive.ReadIconSet(data)
		if err != nil {
			return nil, err
		}

		return nil, idNotFound(id, summary.IDs)
	case kind == archive.KindIconSet:
		return archive.ReadIconSet(data)
	case id != "":
		rec, found, err := archive.LookupSvgl(data, id)
		if err != nil || found {
			return rec, err
		}

		ids, err := archive.ReadSvgCollection(data)
		if err != nil {
			return nil, err
		}

		return nil, idNotFound(id, ids)
	default:
		ids, err := archive.ReadSvgCollection(data)
		if err != nil {
			return nil, err
		}

		return svgCollectionDoc{Icons: ids}, nil
	}
}
