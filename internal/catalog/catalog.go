package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pathways/internal/jsonutil"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

const (
	// ComparisonFile is the auxiliary cross-pathway comparison document.
	ComparisonFile = "pathway-comparison.json"
	// SearchIndexFile is the auxiliary searchable course index.
	SearchIndexFile = "searchable-index.json"
)

// ErrUnknownPathway is returned when an identifier has no loaded record.
var ErrUnknownPathway = errors.New("unknown pathway")

const tracerName = "pathways/catalog"

// Options controls Load.
type Options struct {
	// Dir is the fixture directory holding one <id>.json per pathway.
	Dir string
	// IDs lists pathway identifiers in sidebar order. When empty, every
	// *.json in Dir except the auxiliary documents is loaded, sorted by id.
	IDs []string
	// Logger receives per-file debug output. The zero value discards.
	Logger zerolog.Logger
}

// Catalog is the set of pathways loaded at startup. It is read-only after
// Load returns and safe for concurrent readers.
type Catalog struct {
	dir      string
	ids      []string
	pathways map[string]Pathway
}

// New builds a catalog from in-memory entries, keeping their order.
// Later entries with a duplicate id replace earlier ones.
func New(entries ...Entry) *Catalog {
	c := &Catalog{pathways: make(map[string]Pathway, len(entries))}
	for _, e := range entries {
		if _, dup := c.pathways[e.ID]; !dup {
			c.ids = append(c.ids, e.ID)
		}
		c.pathways[e.ID] = e.Pathway
	}
	return c
}

// Load reads the pathway fixtures described by opts. Files are read
// concurrently; the first failure aborts the load.
func Load(ctx context.Context, opts Options) (*Catalog, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "catalog.Load")
	defer span.End()
	span.SetAttributes(attribute.String("pathways.data_dir", opts.Dir))

	ids := opts.IDs
	if len(ids) == 0 {
		discovered, err := DiscoverIDs(opts.Dir)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		ids = discovered
	}

	loaded := make([]Pathway, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			p, err := loadPathway(gctx, opts.Dir, id)
			if err != nil {
				return err
			}
			opts.Logger.Debug().
				Str("pathway", id).
				Str("name", p.Name).
				Int("courses", p.CourseCount()).
				Msg("loaded pathway")
			loaded[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	entries := make([]Entry, len(ids))
	for i, id := range ids {
		entries[i] = Entry{ID: id, Pathway: loaded[i]}
	}
	c := New(entries...)
	c.dir = opts.Dir
	span.SetAttributes(attribute.Int("pathways.count", len(c.ids)))
	return c, nil
}

func loadPathway(ctx context.Context, dir, id string) (Pathway, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "catalog.LoadPathway")
	defer span.End()
	span.SetAttributes(attribute.String("pathways.id", id))

	if err := ctx.Err(); err != nil {
		return Pathway{}, err
	}
	var p Pathway
	path := filepath.Join(dir, id+".json")
	if err := jsonutil.ReadFile(path, &p); err != nil {
		span.RecordError(err)
		return Pathway{}, fmt.Errorf("loading pathway %s: %w", id, err)
	}
	return p, nil
}

// DiscoverIDs lists the pathway identifiers in dir: the stems of every
// *.json file except the auxiliary documents, sorted.
func DiscoverIDs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading data dir: %w", err)
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		if name == ComparisonFile || name == SearchIndexFile || strings.HasPrefix(name, ".") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

// Dir returns the directory the catalog was loaded from ("" for New).
func (c *Catalog) Dir() string {
	return c.dir
}

// IDs returns pathway identifiers in sidebar order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len returns the number of loaded pathways.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Pathway returns the record for id, or an error wrapping ErrUnknownPathway.
func (c *Catalog) Pathway(id string) (Pathway, error) {
	p, ok := c.pathways[id]
	if !ok {
		return Pathway{}, fmt.Errorf("%w: %q", ErrUnknownPathway, id)
	}
	return p, nil
}

// Entries returns every loaded pathway with its id, in sidebar order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, Entry{ID: id, Pathway: c.pathways[id]})
	}
	return out
}
