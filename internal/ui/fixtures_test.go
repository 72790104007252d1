package ui

import (
	"time"

	"pathways/internal/catalog"
	"pathways/internal/grid"
	"pathways/internal/index"
)

func ptr[T any](v T) *T { return &v }

// testCatalog has one well-formed pathway and one with a course missing credits.
//
// creative-technologist projects to:
//
//	row 0 Year 1 - Fall:   core [Intro, Drawing]  open [Studio]
//	row 1 Year 1 - Winter: core [Open Elective (no code)]
//	row 2 Year 2 - Fall:   program-specific [Systems]
func testCatalog() *catalog.Catalog {
	creative := catalog.Pathway{
		Name: "Creative Technologist",
		Years: map[int]catalog.Year{
			1: {
				Fall: catalog.Term{
					catalog.CoreCourses: {
						{Title: "Intro to Creative Computing", Code: ptr("DIGF-1003"), Credits: ptr(0.5), Description: ptr("Programming for artists.")},
						{Title: "Drawing for Designers", Code: ptr("DIGF-1004"), Credits: ptr(0.5)},
					},
					catalog.OpenElectives: {
						{Title: "Studio Practice", Code: ptr("DIGF-1010"), Credits: ptr(1.0), Description: ptr("Making things."), Prerequisites: ptr("DIGF-1003")},
					},
				},
				Winter: catalog.Term{
					catalog.CoreCourses: {{Title: "Open Elective", Credits: ptr(0.5)}},
				},
			},
			2: {
				Fall: catalog.Term{
					catalog.ProgramSpecificElectives: {
						{Title: "Systems Thinking", Code: ptr("DIGF-2001"), Credits: ptr(1.0)},
					},
				},
			},
		},
	}
	broken := catalog.Pathway{
		Name: "Broken Pathway",
		Years: map[int]catalog.Year{
			1: {Fall: catalog.Term{catalog.CoreCourses: {{Title: "No Credits", Code: ptr("DIGF-9999")}}}},
		},
	}
	return catalog.New(
		catalog.Entry{ID: "creative-technologist", Pathway: creative},
		catalog.Entry{ID: "broken", Pathway: broken},
	)
}

func testGrid() grid.Grid {
	g, err := grid.ProjectSelection(testCatalog(), grid.Selection{PathwayID: "creative-technologist"})
	if err != nil {
		panic(err)
	}
	return g
}

func testLoadedMsg() CatalogLoadedMsg {
	c := testCatalog()
	idx := index.BuildSearchIndex(c.Entries(), index.DefaultMeta, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))
	cmp := index.BuildComparison(c.Entries(), index.DefaultMeta)
	return CatalogLoadedMsg{Catalog: c, Search: &idx, Comparison: &cmp}
}

// sharedIntroComparison lists DIGF-1003 under both test pathways.
func sharedIntroComparison() *index.Comparison {
	return &index.Comparison{
		Pathways: []string{"creative-technologist", "broken"},
		Comparison: index.ComparisonDetail{
			ByCourseType: map[catalog.Category]map[string]*index.Offering{
				catalog.CoreCourses: {
					"DIGF-1003: Intro to Creative Computing": {OfferedIn: []string{"creative-technologist", "broken"}},
				},
			},
		},
	}
}

// repeatedElectivesCatalog has the same code-less course in several slots:
//
//	row 0 Year 1 - Fall: open [Open Elective 0.5]
//	row 1 Year 3 - Fall: open [Open Elective 1.0]  breadth [Open Elective 0.5]
func repeatedElectivesCatalog() *catalog.Catalog {
	elective := func(credits float64, desc string) catalog.Course {
		return catalog.Course{Title: "Open Elective", Credits: ptr(credits), Description: ptr(desc)}
	}
	p := catalog.Pathway{
		Name: "Repeats",
		Years: map[int]catalog.Year{
			1: {Fall: catalog.Term{catalog.OpenElectives: {elective(0.5, "First year elective.")}}},
			3: {Fall: catalog.Term{
				catalog.OpenElectives:    {elective(1.0, "Third year elective.")},
				catalog.BreadthElectives: {elective(0.5, "Third year breadth elective.")},
			}},
		},
	}
	return catalog.New(catalog.Entry{ID: "repeats", Pathway: p})
}

func repeatedElectivesGrid() grid.Grid {
	g, err := grid.ProjectSelection(repeatedElectivesCatalog(), grid.Selection{PathwayID: "repeats"})
	if err != nil {
		panic(err)
	}
	return g
}
