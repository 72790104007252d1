package index

import (
	"fmt"
	"path/filepath"
	"time"

	"pathways/internal/catalog"
	"pathways/internal/jsonutil"
)

// LoadComparison reads the comparison document from dir. ok is false when
// the file does not exist.
func LoadComparison(dir string) (c *Comparison, ok bool, err error) {
	c = &Comparison{}
	ok, err = jsonutil.ReadFileIfExists(filepath.Join(dir, catalog.ComparisonFile), c)
	if err != nil || !ok {
		return nil, ok, err
	}
	return c, true, nil
}

// ComparisonFor reads the comparison document from dir, building one from
// entries when dir is empty or has no document. fromDisk reports which.
func ComparisonFor(dir string, entries []catalog.Entry, meta Meta) (c *Comparison, fromDisk bool, err error) {
	if dir != "" {
		c, ok, err := LoadComparison(dir)
		if err != nil {
			return nil, false, fmt.Errorf("reading %s: %w", catalog.ComparisonFile, err)
		}
		if ok {
			return c, true, nil
		}
	}
	built := BuildComparison(entries, meta)
	return &built, false, nil
}

// LoadSearchIndex reads the search index document from dir. ok is false
// when the file does not exist.
func LoadSearchIndex(dir string) (s *SearchIndex, ok bool, err error) {
	s = &SearchIndex{}
	ok, err = jsonutil.ReadFileIfExists(filepath.Join(dir, catalog.SearchIndexFile), s)
	if err != nil || !ok {
		return nil, ok, err
	}
	return s, true, nil
}

// WriteDocuments builds both auxiliary documents from entries and writes
// them into dir, returning the paths written.
func WriteDocuments(dir string, entries []catalog.Entry, meta Meta, now time.Time) ([]string, error) {
	cmpPath := filepath.Join(dir, catalog.ComparisonFile)
	if err := jsonutil.WriteFile(cmpPath, BuildComparison(entries, meta)); err != nil {
		return nil, fmt.Errorf("writing comparison: %w", err)
	}
	idxPath := filepath.Join(dir, catalog.SearchIndexFile)
	if err := jsonutil.WriteFile(idxPath, BuildSearchIndex(entries, meta, now)); err != nil {
		return nil, fmt.Errorf("writing search index: %w", err)
	}
	return []string{cmpPath, idxPath}, nil
}
