package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"pathways/internal/grid"
	"pathways/internal/index"
)

// handleCatalogLoaded fills the sidebar, then restores or makes the initial selection.
func (a *appModelAdapter) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	stop := a.Sidebar.SetLoading(false)
	reloaded := a.reloading
	a.reloading = false
	if msg.Err != nil {
		a.LoadErr = msg.Err
		a.Status = ""
		return a, stop
	}
	a.LoadErr = nil
	a.Catalog = msg.Catalog
	a.Search = msg.Search
	a.Comparison = msg.Comparison
	a.Sidebar.SetPathways(SummariesFor(msg.Catalog))

	switch {
	case a.SelectedID != "":
		// Reload: re-project the current pathway, keeping the cursor when it still fits.
		cursor := grid.Position{}
		if a.Grid != nil {
			cursor = a.Grid.Cursor
		}
		a.project(a.SelectedID)
		if a.Grid != nil {
			if _, ok := a.Grid.Grid.At(cursor); ok {
				a.Grid.Cursor = cursor
			}
		}
	case a.InitialPathway != "":
		id := a.InitialPathway
		a.InitialPathway = ""
		return a, tea.Batch(stop, msgCmd(SelectPathwayMsg{ID: id}))
	}
	if reloaded && a.GridErr == nil {
		a.Status = fmt.Sprintf("Loaded %d pathways", msg.Catalog.Len())
	}
	return a, stop
}

// handleSelectPathway projects the pathway and focuses its grid.
func (a *appModelAdapter) handleSelectPathway(msg SelectPathwayMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Clear()
	if a.Catalog == nil {
		return a, nil
	}
	a.Sidebar.Select(msg.ID)
	a.project(msg.ID)
	if a.Grid != nil {
		a.Focus.SetFocus(PanelGrid)
	}
	return a, nil
}

// project sets SelectedID and rebuilds the grid for it. A failed projection
// leaves Grid nil and records GridErr for the error panel.
func (a *AppModel) project(id string) {
	a.SelectedID = id
	a.Mode = ModePathway
	a.Status = ""
	a.StatusIsError = false

	g, err := grid.ProjectSelection(a.Catalog, grid.Selection{PathwayID: id, Years: a.Years})
	if err != nil {
		a.Log.Error().Err(err).Str("pathway", id).Msg("projecting pathway")
		a.GridErr = err
		a.Grid = nil
		a.Focus.SetFocus(PanelSidebar)
		return
	}
	a.GridErr = nil
	a.Grid = NewGridView(id, g)
	a.Grid.SetFocused(a.Focus.Focused(PanelGrid))
	if a.width > 0 {
		a.resize(a.width, a.height)
	}
}

func (a *appModelAdapter) handleMovePathway(msg MovePathwayMsg) (tea.Model, tea.Cmd) {
	id, ok := a.Sidebar.Move(msg.Delta)
	if !ok {
		return a, nil
	}
	return a.handleSelectPathway(SelectPathwayMsg{ID: id})
}

func (a *appModelAdapter) handleShowCourse(msg ShowCourseMsg) (tea.Model, tea.Cmd) {
	m := NewCourseModal(a.pathwayName(msg.PathwayID), msg.Entry, a.alsoIn(msg.PathwayID, msg.Entry)...)
	a.Overlays.Push(Overlay{View: m, Dismiss: "esc"})
	return a, nil
}

// pathwayName is the display name of id, or id itself when it has none.
func (a *AppModel) pathwayName(id string) string {
	if a.Catalog != nil {
		if p, err := a.Catalog.Pathway(id); err == nil && p.Name != "" {
			return p.Name
		}
	}
	return id
}

// alsoIn names the other pathways the comparison lists for e's course.
func (a *AppModel) alsoIn(pathwayID string, e grid.Entry) []string {
	var names []string
	for _, id := range a.Comparison.OfferedIn(index.CourseKey(e.Course)) {
		if id != pathwayID {
			names = append(names, a.pathwayName(id))
		}
	}
	return names
}

func (a *appModelAdapter) handleShowSelectedCourse() (tea.Model, tea.Cmd) {
	if a.Grid == nil {
		return a, nil
	}
	e, ok := a.Grid.SelectedEntry()
	if !ok {
		return a, nil
	}
	return a.handleShowCourse(ShowCourseMsg{PathwayID: a.Grid.PathwayID, Entry: e})
}

// handleSelectCourse jumps to a search hit. The year filter is dropped so
// the course is on screen.
func (a *appModelAdapter) handleSelectCourse(msg SelectCourseMsg) (tea.Model, tea.Cmd) {
	a.Years = grid.YearRange{}
	if _, cmd := a.handleSelectPathway(SelectPathwayMsg{ID: msg.PathwayID}); cmd != nil || a.Grid == nil {
		return a, cmd
	}
	if !a.Grid.FocusCourse(msg.CourseRef) {
		a.Status = fmt.Sprintf("%s not found in %s", msg.Code, msg.PathwayID)
		a.StatusIsError = true
		return a, nil
	}
	return a.handleShowSelectedCourse()
}

func (a *appModelAdapter) handleShowSearch() (tea.Model, tea.Cmd) {
	search := a.Search
	m := NewSearchModal(func(q string, limit int) []index.Hit {
		return search.Search(q, limit)
	})
	a.Overlays.Push(Overlay{View: m, Dismiss: "esc"})
	return a, m.Init()
}

func (a *appModelAdapter) handleSetYears(msg SetYearsMsg) (tea.Model, tea.Cmd) {
	a.Years = msg.Years
	if a.SelectedID != "" && a.Catalog != nil {
		a.project(a.SelectedID)
		if a.Grid != nil {
			a.Focus.SetFocus(PanelGrid)
		}
	}
	return a, nil
}
