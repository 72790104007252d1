package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
)

func testSummaries() []PathwaySummary {
	return []PathwaySummary{
		{ID: "creative-technologist", Name: "Creative Technologist", Courses: 30},
		{ID: "games-playable-media-maker", Name: "Games Playable Media Maker", Courses: 28},
		{ID: "data-designer", Name: "", Courses: 0},
	}
}

func TestSummariesFor(t *testing.T) {
	got := SummariesFor(testCatalog())
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	if got[0].ID != "creative-technologist" || got[0].Name != "Creative Technologist" || got[0].Courses != 5 {
		t.Errorf("unexpected first summary %+v", got[0])
	}
	if SummariesFor(nil) != nil {
		t.Error("nil catalog should give nil summaries")
	}
}

func TestSidebarView_JKNavigation(t *testing.T) {
	s := NewSidebarView()
	s.SetPathways(testSummaries())

	if s.Selected() != 0 {
		t.Fatalf("expected initial Selected=0, got %d", s.Selected())
	}
	s.Update(keyMsg("j"))
	if s.Selected() != 1 {
		t.Errorf("after j: expected Selected=1, got %d", s.Selected())
	}
	s.Update(keyMsg("down"))
	if s.Selected() != 2 {
		t.Errorf("after down: expected Selected=2, got %d", s.Selected())
	}
	s.Update(keyMsg("j"))
	if s.Selected() != 2 {
		t.Errorf("j at bottom: expected Selected=2, got %d", s.Selected())
	}
	s.Update(keyMsg("k"))
	if id, _ := s.SelectedID(); id != "games-playable-media-maker" {
		t.Errorf("after k: expected games-playable-media-maker, got %q", id)
	}
}

func TestSidebarView_SelectAndMove(t *testing.T) {
	s := NewSidebarView()
	s.SetPathways(testSummaries())

	if !s.Select("data-designer") {
		t.Fatal("Select should find data-designer")
	}
	if s.Select("missing") {
		t.Error("Select should not find an unknown id")
	}
	if id, _ := s.Move(1); id != "creative-technologist" {
		t.Errorf("Move(1) from last should wrap to first, got %q", id)
	}
	if id, _ := s.Move(-1); id != "data-designer" {
		t.Errorf("Move(-1) from first should wrap to last, got %q", id)
	}
}

func TestSidebarView_SetPathwaysKeepsSelection(t *testing.T) {
	s := NewSidebarView()
	s.SetPathways(testSummaries())
	s.Select("games-playable-media-maker")

	reordered := testSummaries()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	s.SetPathways(reordered)
	if id, _ := s.SelectedID(); id != "games-playable-media-maker" {
		t.Errorf("selection should follow the id, got %q", id)
	}

	s.SetPathways(testSummaries()[2:])
	if id, _ := s.SelectedID(); id != "data-designer" {
		t.Errorf("dropped selection should reset to first, got %q", id)
	}
}

func TestSidebarView_NavigationWithEmptyList(t *testing.T) {
	s := NewSidebarView()
	s.Update(keyMsg("j"))
	s.Update(keyMsg("k"))
	if _, ok := s.SelectedID(); ok {
		t.Error("empty sidebar has no selection")
	}
	if _, ok := s.Move(1); ok {
		t.Error("Move on empty sidebar should fail")
	}
	if !strings.Contains(s.View(), "No pathways found") {
		t.Errorf("expected empty message, got:\n%s", s.View())
	}
}

func TestSidebarView_ViewRendersPathways(t *testing.T) {
	s := NewSidebarView()
	s.SetPathways(testSummaries())
	s.SetSize(sidebarWidth, 30)

	view := s.View()
	for _, want := range []string{"Pathways (3)", "Creative Technologist", "30 courses", "Games Playable Media Maker", "28 courses", "data-designer", "0 courses"} {
		if !strings.Contains(view, want) {
			t.Errorf("sidebar should contain %q, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "…") {
		t.Errorf("no sidebar line should be truncated at width %d, got:\n%s", sidebarWidth, view)
	}
}

func TestSidebarView_Loading(t *testing.T) {
	s := NewSidebarView()
	if cmd := s.SetLoading(true); cmd == nil {
		t.Error("SetLoading(true) should start the spinner")
	}
	if !s.Loading() {
		t.Error("expected loading")
	}
	if strings.Contains(s.View(), "No pathways found") {
		t.Error("no empty message while loading")
	}
	if _, cmd := s.Update(spinner.TickMsg{}); cmd == nil {
		t.Error("spinner should keep ticking while loading")
	}
	if cmd := s.SetLoading(false); cmd != nil {
		t.Error("SetLoading(false) should not return a cmd")
	}
	if _, cmd := s.Update(spinner.TickMsg{}); cmd != nil {
		t.Error("spinner ticks are dropped after loading")
	}
}
