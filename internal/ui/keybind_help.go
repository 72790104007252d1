package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// Mid-sequence (e.g. "SPC p") it lists the next-level keys.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil {
		return ""
	}
	km := &KeyMap{registry: keyHandler.Registry, keyHandler: keyHandler, mode: mode}
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted

	prefix := keyHandler.LeaderSeq
	if seq := km.currentSeq(); seq != "" {
		prefix = seq
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	return box.Render(Styles.Muted.Render(prefix) + " " + h.ShortHelpView(bindings))
}
