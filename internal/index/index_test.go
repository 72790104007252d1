package index

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pathways/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func testEntries() []catalog.Entry {
	intro := catalog.Course{
		Title:       "Intro to Creative Computing",
		Code:        ptr("DIGF-1003"),
		Credits:     ptr(0.5),
		Description: ptr("Programming for artists, designers, and makers."),
	}
	return []catalog.Entry{
		{ID: "creative-technologist", Pathway: catalog.Pathway{
			Name: "Creative Technologist",
			Years: map[int]catalog.Year{
				1: {Fall: catalog.Term{
					catalog.CoreCourses: {intro},
					catalog.OpenElectives: {
						{Title: "Open Elective", Credits: ptr(0.5)},
						{Title: "", Credits: ptr(0.5)},
					},
				}},
			},
		}},
		{ID: "games-playable-media-maker", Pathway: catalog.Pathway{
			Name: "Games",
			Years: map[int]catalog.Year{
				1: {Fall: catalog.Term{catalog.CoreCourses: {intro}}},
				2: {Winter: catalog.Term{catalog.ProgramSpecificElectives: {
					{Title: "Game Design Studio", Code: ptr("DIGF-2010"), Credits: ptr(1.0), Description: ptr("Prototyping playable systems.")},
				}}},
			},
		}},
	}
}

func TestBuildComparison(t *testing.T) {
	c := BuildComparison(testEntries(), DefaultMeta)

	assert.Equal(t, "Digital Futures", c.Program)
	assert.Equal(t, "2025/26", c.AcademicYear)
	assert.Equal(t, []string{"creative-technologist", "games-playable-media-maker"}, c.Pathways)
	assert.Equal(t, []string{
		"DIGF-1003: Intro to Creative Computing",
		"DIGF-2010: Game Design Studio",
		"TBD: Open Elective",
	}, c.Comparison.AllCourses)

	year1 := c.Comparison.ByYear["1"]
	require.NotNil(t, year1)
	assert.Equal(t,
		[]string{"creative-technologist", "games-playable-media-maker"},
		year1[catalog.Fall][catalog.CoreCourses]["DIGF-1003: Intro to Creative Computing"])
	// Both semesters and all categories exist once a year is seen.
	assert.NotNil(t, year1[catalog.Winter][catalog.BreadthElectives])

	off := c.Comparison.ByCourseType[catalog.CoreCourses]["DIGF-1003: Intro to Creative Computing"]
	require.NotNil(t, off)
	assert.Equal(t, []string{"creative-technologist", "games-playable-media-maker"}, off.OfferedIn)
	assert.Equal(t, "Intro to Creative Computing", off.Details.Title)

	assert.Equal(t, []string{"DIGF-1003: Intro to Creative Computing"}, c.SharedCourses())
}

func TestBuildSearchIndex(t *testing.T) {
	updated := time.Date(2025, 9, 2, 15, 0, 0, 0, time.UTC)
	idx := BuildSearchIndex(testEntries(), DefaultMeta, updated)

	assert.Equal(t, "2025-09-02", idx.LastUpdated)
	lk := idx.Index

	assert.Contains(t, lk.ByCode, "DIGF-1003")
	assert.Contains(t, lk.ByCode, "DIGF-2010")
	assert.Len(t, lk.ByCode, 2, "courses without a code are not indexed by code")

	assert.Len(t, lk.ByTitle["creative"], 2)
	assert.NotContains(t, lk.ByTitle, "to", "short title words are skipped")
	assert.Contains(t, lk.ByKeyword, "artists")
	assert.Contains(t, lk.ByKeyword, "designers", "punctuation is trimmed")
	assert.NotContains(t, lk.ByKeyword, "and")

	assert.Len(t, lk.ByPathway["creative-technologist"], 2, "blank-title course left out")
	assert.Len(t, lk.ByPathway["games-playable-media-maker"], 2)
	assert.Len(t, lk.ByYear["1"], 3)
	assert.Len(t, lk.ByCourseType[catalog.ProgramSpecificElectives], 1)
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"intro", "creative", "computing"}, Words("Intro to Creative Computing", 2))
	assert.Equal(t, []string{"physical", "computing"}, Words("Physical computing, computing!", 3))
	assert.Empty(t, Words("  ", 0))
}

func TestSearch(t *testing.T) {
	idx := BuildSearchIndex(testEntries(), DefaultMeta, time.Now())

	hits := idx.Search("game", 0)
	require.Len(t, hits, 1)
	assert.Equal(t, "DIGF-2010", hits[0].Code)
	assert.Equal(t, titleWeight, hits[0].Score)

	hits = idx.Search("digf1003", 0)
	require.NotEmpty(t, hits)
	assert.Equal(t, "DIGF-1003", hits[0].Code)
	assert.GreaterOrEqual(t, hits[0].Score, codeWeight)

	hits = idx.Search("creative programming", 0)
	require.Len(t, hits, 2)
	for _, h := range hits {
		assert.Equal(t, titleWeight+keywordWeight, h.Score)
	}
	assert.Equal(t, "creative-technologist", hits[0].Pathway)

	assert.Len(t, idx.Search("creative", 1), 1)
	assert.Empty(t, idx.Search("zzz", 0))

	var nilIdx *SearchIndex
	assert.Nil(t, nilIdx.Search("x", 0))
}

func TestWriteDocuments_ThenLoad(t *testing.T) {
	dir := t.TempDir()

	_, ok, err := LoadSearchIndex(dir)
	require.NoError(t, err)
	assert.False(t, ok)

	paths, err := WriteDocuments(dir, testEntries(), DefaultMeta, time.Now())
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	cmp, ok, err := LoadComparison(dir)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, cmp.Comparison.AllCourses, 3)

	idx, ok, err := LoadSearchIndex(dir)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, idx.Search("game", 0), 1)
}

func TestComparison_OfferedIn(t *testing.T) {
	c := BuildComparison(testEntries(), DefaultMeta)

	assert.Equal(t,
		[]string{"creative-technologist", "games-playable-media-maker"},
		c.OfferedIn("DIGF-1003: Intro to Creative Computing"))
	assert.Equal(t, []string{"games-playable-media-maker"}, c.OfferedIn("DIGF-2010: Game Design Studio"))
	assert.Empty(t, c.OfferedIn("DIGF-9999: Missing"))

	var nilCmp *Comparison
	assert.Nil(t, nilCmp.OfferedIn("DIGF-1003: Intro to Creative Computing"))
}

func TestComparisonFor(t *testing.T) {
	t.Run("builds when no document exists", func(t *testing.T) {
		c, fromDisk, err := ComparisonFor(t.TempDir(), testEntries(), DefaultMeta)
		require.NoError(t, err)
		assert.False(t, fromDisk)
		assert.Len(t, c.Comparison.AllCourses, 3)
	})

	t.Run("builds when dir is empty", func(t *testing.T) {
		c, fromDisk, err := ComparisonFor("", testEntries(), DefaultMeta)
		require.NoError(t, err)
		assert.False(t, fromDisk)
		assert.Equal(t, []string{"creative-technologist", "games-playable-media-maker"}, c.Pathways)
	})

	t.Run("prefers the document on disk", func(t *testing.T) {
		dir := t.TempDir()
		_, err := WriteDocuments(dir, testEntries()[:1], DefaultMeta, time.Now())
		require.NoError(t, err)

		c, fromDisk, err := ComparisonFor(dir, testEntries(), DefaultMeta)
		require.NoError(t, err)
		assert.True(t, fromDisk)
		assert.Equal(t, []string{"creative-technologist"}, c.Pathways)
	})

	t.Run("reports a malformed document", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, catalog.ComparisonFile), []byte("{"), 0o644))

		_, _, err := ComparisonFor(dir, testEntries(), DefaultMeta)
		assert.ErrorContains(t, err, catalog.ComparisonFile)
	})
}
