package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pathways/internal/catalog"
	"pathways/internal/importer"
	"pathways/internal/index"
	"pathways/internal/jsonutil"
)

func newImportCmd(a *app) *cobra.Command {
	var (
		sources []string
		out     string
	)
	cmd := &cobra.Command{
		Use:   "import --csv id=path [--csv id=path ...]",
		Short: "Convert pathway spreadsheets into fixtures",
		Long: `Convert Latin-1 CSV exports of pathway planning sheets into pathway
fixtures, then write the comparison and search documents for them.`,
		Example: `  pathways import --csv creative-technologist=ct.csv --csv game-design=gd.csv --out pathways`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				out = a.cfg.DataDir
			}
			entries := make([]catalog.Entry, 0, len(sources))
			for _, src := range sources {
				id, path, ok := strings.Cut(src, "=")
				if !ok || id == "" || path == "" {
					return fmt.Errorf("invalid --csv %q: want id=path", src)
				}
				p, err := importer.ImportFile(cmd.Context(), path, id, a.log)
				if err != nil {
					return err
				}
				dest := filepath.Join(out, id+".json")
				if err := jsonutil.WriteFile(dest, p); err != nil {
					return fmt.Errorf("writing %s: %w", dest, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d courses)\n", dest, p.CourseCount())
				entries = append(entries, catalog.Entry{ID: id, Pathway: p})
			}
			return writeDocuments(cmd, a, out, entries)
		},
	}
	cmd.Flags().StringArrayVar(&sources, "csv", nil, "pathway id and CSV path as id=path (repeatable)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default the data directory)")
	_ = cmd.MarkFlagRequired("csv")
	return cmd
}

func newIndexCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Rebuild the comparison and search documents",
		Long: `Rebuild ` + catalog.ComparisonFile + ` and ` + catalog.SearchIndexFile + `
from the pathway fixtures in the data directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			if out == "" {
				out = a.cfg.DataDir
			}
			return writeDocuments(cmd, a, out, c.Entries())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default the data directory)")
	return cmd
}

func writeDocuments(cmd *cobra.Command, a *app, dir string, entries []catalog.Entry) error {
	paths, err := index.WriteDocuments(dir, entries, index.DefaultMeta, time.Now())
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
	}
	cmp, ok, err := index.LoadComparison(dir)
	if err != nil {
		return fmt.Errorf("reading back %s: %w", catalog.ComparisonFile, err)
	}
	if ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%d courses shared by more than one pathway\n", len(cmp.SharedCourses()))
	}
	a.log.Info().Str("dir", dir).Int("pathways", len(entries)).Msg("wrote documents")
	return nil
}
