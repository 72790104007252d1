package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v3"

	"pathways/internal/catalog"
	"pathways/internal/grid"
	"pathways/internal/jsonutil"
	"pathways/internal/ui"
)

// Output formats for the grid command.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func newGridCmd(a *app) *cobra.Command {
	var (
		years  grid.YearRange
		format string
	)
	cmd := &cobra.Command{
		Use:   "grid <pathway-id>",
		Short: "Print a pathway's course grid",
		Example: `  pathways grid creative-technologist
  pathways grid creative-technologist --from 2 --to 3 --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGrid(cmd.Context(), cmd.OutOrStdout(), grid.Selection{PathwayID: args[0], Years: years}, format)
		},
	}
	cmd.Flags().IntVar(&years.First, "from", catalog.FirstYear, "first year to show")
	cmd.Flags().IntVar(&years.Last, "to", catalog.LastYear, "last year to show")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json or yaml")
	return cmd
}

func (a *app) runGrid(ctx context.Context, w io.Writer, sel grid.Selection, format string) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "cli.grid", trace.WithAttributes(
		attribute.String("pathways.id", sel.PathwayID),
		attribute.String("pathways.format", format),
	))
	defer span.End()

	g, err := a.project(ctx, sel)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.Int("pathways.rows", len(g.Rows)))
	return writeGrid(w, g, format)
}

// project loads the catalog and projects one pathway of it.
func (a *app) project(ctx context.Context, sel grid.Selection) (grid.Grid, error) {
	c, err := a.loadCatalog(ctx)
	if err != nil {
		return grid.Grid{}, err
	}
	return a.projectIn(c, sel)
}

func (a *app) projectIn(c *catalog.Catalog, sel grid.Selection) (grid.Grid, error) {
	g, err := grid.ProjectSelection(c, sel)
	if err != nil {
		a.log.Error().Err(err).Str("pathway", sel.PathwayID).Msg("projecting pathway")
		return grid.Grid{}, err
	}
	return g, nil
}

func writeGrid(w io.Writer, g grid.Grid, format string) error {
	switch format {
	case formatTable:
		if g.Name != "" {
			fmt.Fprintln(w, ui.Styles.Title.Render(g.Name))
		}
		_, err := fmt.Fprintln(w, ui.RenderGrid(g, nil, 0))
		return err
	case formatJSON:
		data, err := jsonutil.Marshal(g)
		if err != nil {
			return fmt.Errorf("encoding grid: %w", err)
		}
		_, err = w.Write(data)
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return fmt.Errorf("encoding grid: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}
