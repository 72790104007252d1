package ui

import "testing"

func TestFocusManager_NextAndPrevWrap(t *testing.T) {
	var changes []string
	f := NewFocusManager([]string{"a", "b", "c"})
	f.OnChange = func(from, to string) { changes = append(changes, from+">"+to) }

	if got := f.Prev(); got != "c" {
		t.Errorf("Prev from first should wrap to last, got %q", got)
	}
	if got := f.Prev(); got != "b" {
		t.Errorf("Prev from c: got %q", got)
	}
	if got := f.Next(); got != "c" {
		t.Errorf("Next from b: got %q", got)
	}
	if got := f.Next(); got != "a" {
		t.Errorf("Next from last should wrap to first, got %q", got)
	}
	want := []string{"a>c", "c>b", "b>c", "c>a"}
	if len(changes) != len(want) {
		t.Fatalf("OnChange calls = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %q, want %q", i, changes[i], want[i])
		}
	}
}

func TestFocusManager_SetFocus(t *testing.T) {
	f := NewFocusManager([]string{PanelSidebar, PanelGrid})
	if f.SetFocus("nope") {
		t.Error("unknown panel should be rejected")
	}
	if !f.SetFocus(PanelGrid) || !f.Focused(PanelGrid) {
		t.Error("expected grid focus")
	}
	if got := NewFocusManager(nil).Prev(); got != "" {
		t.Errorf("empty order: got %q", got)
	}
}
