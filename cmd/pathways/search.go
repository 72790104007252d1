package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pathways/internal/catalog"
	"pathways/internal/grid"
	"pathways/internal/index"
	"pathways/internal/ui/textutil"
)

const defaultSearchLimit = 10

func newSearchCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search courses across all pathways",
		Long: `Search courses by code, title words and description keywords.

The searchable index in the data directory is used when present; otherwise
one is built from the pathway fixtures.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := a.searchIndex(cmd.Context())
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			hits := idx.Search(query, limit)
			a.log.Info().Str("query", query).Int("hits", len(hits)).Msg("search")
			return writeHits(cmd.OutOrStdout(), hits)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultSearchLimit, "maximum number of results (0 for all)")
	return cmd
}

// searchIndex reads the on-disk index, building one from the fixtures when
// the data directory has none.
func (a *app) searchIndex(ctx context.Context) (*index.SearchIndex, error) {
	idx, ok, err := index.LoadSearchIndex(a.cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", catalog.SearchIndexFile, err)
	}
	if ok {
		return idx, nil
	}
	c, err := a.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	built := index.BuildSearchIndex(c.Entries(), index.DefaultMeta, time.Now())
	a.log.Debug().Int("codes", len(built.Index.ByCode)).Msg("built search index")
	return &built, nil
}

func writeHits(w io.Writer, hits []index.Hit) error {
	if len(hits) == 0 {
		_, err := fmt.Fprintln(w, "No matches")
		return err
	}
	for _, h := range hits {
		code := h.Code
		if code == "" {
			code = grid.CodePlaceholder
		}
		where := fmt.Sprintf("%s  year %s %s  %s", h.Pathway, h.Year, h.Semester.Label(), h.CourseType.Label())
		if _, err := fmt.Fprintf(w, "%s %s %s\n",
			textutil.PadRightVisual(code, 10),
			textutil.PadRightVisual(textutil.Truncate(h.Title, 40), 40),
			where,
		); err != nil {
			return err
		}
	}
	return nil
}
