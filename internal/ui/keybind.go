package ui

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC" for space, "SPC p n" for
// SPC then p then n. Single keys: "q", "/", "tab", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // absent = all modes
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a key sequence to a command, replacing any existing binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a help description.
// The binding applies to all modes.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers a key sequence that only fires in modes.
// Empty modes means every mode.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[n] = modes
	} else {
		delete(r.modeFilter, n)
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// LookupForMode is Lookup restricted to bindings that apply in mode.
func (r *KeybindRegistry) LookupForMode(seq string, mode AppMode) tea.Cmd {
	if !r.appliesToMode(normalizeSeq(seq), mode) {
		return nil
	}
	return r.Lookup(seq)
}

// HasPrefix reports whether a longer binding starts with seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// Hints returns every bound sequence with its description (or the sequence
// itself when none was given).
func (r *KeybindRegistry) Hints() map[string]string {
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd == nil {
			continue
		}
		if d := r.descriptions[seq]; d != "" {
			out[seq] = d
		} else {
			out[seq] = seq
		}
	}
	return out
}

// submenuLabel names first-level leader keys that open a submenu.
var submenuLabel = map[string]string{
	"p": "Pathway",
	"y": "Years",
}

// LeaderHints returns the next keys available after currentSeq ("" means
// right after SPC) in mode. Keys that open a submenu show a generic label.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.appliesToMode(seq, mode) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		next := rest
		if parts := strings.Fields(rest); len(parts) > 0 {
			next = parts[0]
		}
		if r.HasPrefix(prefix + next) {
			if label, ok := submenuLabel[next]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
			continue
		}
		if d := r.descriptions[seq]; d != "" {
			out[next] = d
		} else {
			out[next] = seq
		}
	}
	return out
}

func (r *KeybindRegistry) appliesToMode(seq string, mode AppMode) bool {
	modes, ok := r.modeFilter[seq]
	return !ok || slices.Contains(modes, mode)
}

// normalizeSeq converts tea key strings to the registry format ("space" -> "SPC").
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// KeyHandler tracks leader-key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // tea.KeyMsg.String() of the leader, " " for space
	LeaderSeq     string   // "SPC"
	LeaderWaiting bool     // a leader sequence is in progress
	Buffer        []string // sequence typed so far in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// HandleForMode processes a key, honoring mode filters. consumed means the
// key belonged to the keybind system and must not reach views.
func (h *KeyHandler) HandleForMode(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.LookupForMode(seq, mode); c != nil {
			h.reset()
			return true, c
		}
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.reset()
		return true, nil
	}

	if c := h.Registry.LookupForMode(keyToSeqPart(s), mode); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// keyToSeqPart converts a tea key string to a sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyMap implements help.KeyMap over the leader hints for the current mode
// and sequence.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	mode       AppMode
}

// NewKeyMap creates a KeyMap for the given registry, handler, and mode.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, mode AppMode) help.KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler, mode: mode}
}

// ShortHelp returns the available leader keys, sorted, plus esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.LeaderHints(km.currentSeq(), km.mode)
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp returns ShortHelp as a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

// currentSeq is the leader sequence typed so far without the leading SPC,
// or "" right after SPC.
func (km *KeyMap) currentSeq() string {
	if km.keyHandler == nil || len(km.keyHandler.Buffer) <= 1 {
		return ""
	}
	return strings.Join(km.keyHandler.Buffer, " ")
}
