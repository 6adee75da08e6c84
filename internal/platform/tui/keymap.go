package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-parley/internal/config"
	"github.com/vovakirdan/tui-parley/internal/core"
)

// KeyMap translates Bubble Tea key messages to scene events.
// Bindings come from the scene config so they can be remapped in YAML.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Talk    key.Binding
	Leave   key.Binding
	Commit  key.Binding
	Erase   key.Binding
	History key.Binding
	Quit    key.Binding

	talking bool // selects which bindings the help line shows
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Left:    binding(kb.Left, "left"),
		Right:   binding(kb.Right, "right"),
		Jump:    binding(kb.Jump, "jump"),
		Talk:    binding(kb.Talk, "talk"),
		Leave:   binding(kb.Leave, "stop talking"),
		Commit:  binding(kb.Commit, "say"),
		Erase:   binding(kb.Erase, "erase"),
		History: binding(kb.History, "history"),
		Quit:    binding(kb.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = keyLabel(k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// keyLabel returns a printable name for a terminal key name.
func keyLabel(k string) string {
	switch k {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	}
	return k
}

// SetTalking switches the help line between walking and talking bindings.
func (k *KeyMap) SetTalking(talking bool) {
	k.talking = talking
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	if k.talking {
		return []key.Binding{k.Commit, k.Erase, k.Leave}
	}
	return []key.Binding{k.Left, k.Right, k.Jump, k.Talk, k.History, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Talk, k.Leave, k.Commit, k.Erase},
		{k.History, k.Quit},
	}
}

// actions returns the bindings in match order.
func (k KeyMap) actions() []struct {
	action  core.Action
	binding key.Binding
} {
	return []struct {
		action  core.Action
		binding key.Binding
	}{
		{core.ActionLeft, k.Left},
		{core.ActionRight, k.Right},
		{core.ActionJump, k.Jump},
		{core.ActionTalk, k.Talk},
		{core.ActionLeave, k.Leave},
		{core.ActionCommit, k.Commit},
		{core.ActionErase, k.Erase},
		{core.ActionHistory, k.History},
		{core.ActionQuit, k.Quit},
	}
}

// Action returns the action bound to the key, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, a := range k.actions() {
		if key.Matches(msg, a.binding) {
			return a.action
		}
	}
	return core.ActionNone
}

// Events translates one key message into scene events.
// Ctrl+C always quits. A printable key yields its key-down (if bound) followed
// by a text event, so the scene can treat it as movement or as typing.
// Keys bound to dialogue control actions never produce text.
func (k KeyMap) Events(msg tea.KeyMsg) []core.Event {
	if msg.Type == tea.KeyCtrlC {
		return []core.Event{core.QuitEvent()}
	}

	var events []core.Event
	action := k.Action(msg)
	if action != core.ActionNone {
		events = append(events, core.KeyDown(action))
	}

	switch action {
	case core.ActionTalk, core.ActionLeave, core.ActionCommit, core.ActionErase:
		return events
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		if text := string(msg.Runes); text != "" {
			events = append(events, core.TextInput(text))
		}
	}
	return events
}

// HoldTracker synthesises key-up events for movement keys.
// Terminals only report presses and auto-repeats, so a key counts as held
// until it has not been seen for the release window.
// A key pressed since the last Expire is never released by that Expire, so
// every press reaches at least one frame.
type HoldTracker struct {
	release time.Duration
	held    map[core.Action]hold
}

type hold struct {
	last  time.Time
	fresh bool // pressed since the last Expire
}

// NewHoldTracker creates a tracker with the given release window.
func NewHoldTracker(release time.Duration) *HoldTracker {
	return &HoldTracker{
		release: release,
		held:    make(map[core.Action]hold),
	}
}

// Tracks reports whether the action is a held movement action.
func (h *HoldTracker) Tracks(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}

// Press records a press or repeat of a movement action.
// Pressing one direction releases the other, since terminals only repeat the
// most recent key. Returns the key-up events this causes.
func (h *HoldTracker) Press(a core.Action, now time.Time) []core.Event {
	if !h.Tracks(a) {
		return nil
	}

	var events []core.Event
	for other := range h.held {
		if other != a {
			delete(h.held, other)
			events = append(events, core.KeyUp(other))
		}
	}
	h.held[a] = hold{last: now, fresh: true}
	return events
}

// Expire releases every action not seen within the release window.
func (h *HoldTracker) Expire(now time.Time) []core.Event {
	var events []core.Event
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		st, ok := h.held[a]
		if !ok {
			continue
		}
		if st.fresh {
			h.held[a] = hold{last: st.last}
			continue
		}
		if now.Sub(st.last) >= h.release {
			delete(h.held, a)
			events = append(events, core.KeyUp(a))
		}
	}
	return events
}

// Held reports whether the action is currently considered held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.held[a]
	return ok
}
