package ui

import (
	"pathways/internal/catalog"
	"pathways/internal/grid"
	"pathways/internal/index"
)

// CatalogLoadedMsg carries the result of loading the pathway fixtures.
type CatalogLoadedMsg struct {
	Catalog    *catalog.Catalog
	Search     *index.SearchIndex
	Comparison *index.Comparison
	Err        error
}

// SelectPathwayMsg shows the grid of a pathway.
type SelectPathwayMsg struct {
	ID string
}

// MovePathwayMsg selects the pathway delta positions away in the sidebar (SPC p n / SPC p p).
type MovePathwayMsg struct {
	Delta int
}

// ShowCourseMsg opens the course card for an entry of a pathway grid.
type ShowCourseMsg struct {
	PathwayID string
	Entry     grid.Entry
}

// ShowSelectedCourseMsg opens the card for the entry under the grid cursor (SPC c).
type ShowSelectedCourseMsg struct{}

// SelectCourseMsg selects a pathway, moves the cursor to a course, and opens
// its card. Sent by the search overlay.
type SelectCourseMsg struct {
	PathwayID string
	CourseRef
}

// ShowSearchMsg opens the search overlay (/ or SPC s).
type ShowSearchMsg struct{}

// SetYearsMsg limits the grid to a year range; the zero range shows all years.
type SetYearsMsg struct {
	Years grid.YearRange
}

// ToggleFocusMsg moves focus between sidebar and grid: forward on Tab,
// backward on Shift+Tab.
type ToggleFocusMsg struct {
	Back bool
}

// ReloadMsg reloads the fixtures from disk (SPC r).
type ReloadMsg struct{}

// DismissModalMsg closes the top overlay.
type DismissModalMsg struct{}
