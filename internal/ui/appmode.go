package ui

// AppMode is the top-level browsing state. Keybindings can be limited to a mode.
type AppMode int

const (
	// ModeBrowse: no pathway selected yet; the main panel shows the placeholder.
	ModeBrowse AppMode = iota
	// ModePathway: a pathway grid is on screen.
	ModePathway
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModePathway:
		return "Pathway"
	default:
		return "Unknown"
	}
}
