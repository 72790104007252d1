package ui

import "slices"

// Panel IDs used in the browse layout's focus order.
const (
	PanelSidebar = "sidebar"
	PanelGrid    = "grid"
)

// FocusManager tracks and rotates focus across panels.
type FocusManager struct {
	Current  string   // ID of the focused panel
	Order    []string // Tab order
	OnChange func(from, to string)
}

// NewFocusManager focuses the first panel of order.
func NewFocusManager(order []string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next moves focus to the next panel in order and returns its ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous panel in order and returns its ID.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	n := len(f.Order)
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in the order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.set(id)
	return true
}

// Focused reports whether id has focus.
func (f *FocusManager) Focused(id string) bool {
	return f.Current == id
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
