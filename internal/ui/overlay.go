package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal view with a dismiss key.
type Overlay struct {
	View    View
	Dismiss string // key that dismisses, e.g. "esc"
}

// IsDismissKey reports whether key dismisses this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack holds open overlays; the topmost receives input first.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens o on top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop closes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Clear closes every overlay.
func (s *OverlayStack) Clear() {
	s.Stack = nil
}

// UpdateTop passes msg to the top overlay and stores the returned View.
// The caller runs the returned cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	v, cmd := top.View.Update(msg)
	top.View = v
	return cmd, true
}
