package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"pathways/internal/catalog"
	"pathways/internal/index"
)

// CatalogLoader loads the fixtures; the CLI binds it to catalog.Load with
// the configured options.
type CatalogLoader func(ctx context.Context) (*catalog.Catalog, error)

// loadCatalogCmd loads the catalog off the UI goroutine, indexes it for
// search, and reads the pathway comparison published next to the fixtures.
func loadCatalogCmd(load CatalogLoader, log zerolog.Logger) tea.Cmd {
	return func() tea.Msg {
		if load == nil {
			return CatalogLoadedMsg{Catalog: catalog.New()}
		}
		start := time.Now()
		c, err := load(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("loading catalog")
			return CatalogLoadedMsg{Err: err}
		}
		idx := index.BuildSearchIndex(c.Entries(), index.DefaultMeta, time.Now())
		cmp, fromDisk, err := index.ComparisonFor(c.Dir(), c.Entries(), index.DefaultMeta)
		if err != nil {
			log.Warn().Err(err).Msg("comparison unreadable, rebuilding")
			built := index.BuildComparison(c.Entries(), index.DefaultMeta)
			cmp, fromDisk = &built, false
		}
		log.Info().
			Int("pathways", c.Len()).
			Int("codes", len(idx.Index.ByCode)).
			Bool("comparison_on_disk", fromDisk).
			Dur("elapsed", time.Since(start)).
			Msg("catalog loaded")
		return CatalogLoadedMsg{Catalog: c, Search: &idx, Comparison: cmp}
	}
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
