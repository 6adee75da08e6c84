package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-parley/internal/core"
	"github.com/vovakirdan/tui-parley/internal/storage"
)

func TestFormatTally(t *testing.T) {
	tests := []struct {
		tally map[string]int
		want  string
	}{
		{nil, "no lines"},
		{map[string]int{"happy": 2}, "happy 2"},
		{map[string]int{"neutral": 1, "angry": 3, "happy": 2}, "angry 3, happy 2, neutral 1"},
	}

	for _, tt := range tests {
		if got := FormatTally(tt.tally); got != tt.want {
			t.Errorf("FormatTally(%v) = %q, expected %q", tt.tally, got, tt.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortID() = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID(short) = %q", got)
	}
}

func TestBrowserEmpty(t *testing.T) {
	m := NewBrowserModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No sessions recorded yet") {
		t.Error("expected empty placeholder")
	}
}

func TestBrowserOpenAndBack(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	id, _ := store.StartSession("meadow", "alice")
	store.SaveLine(id, core.Exchange{Line: "hello", Mood: "happy", Reply: "Hello my friend"})

	m := NewBrowserModel(store, 100, 30)
	if len(m.sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(m.sessions))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(BrowserModel)
	if m.open == nil || m.open.ID != id {
		t.Fatal("enter should open the selected session")
	}
	if len(m.lines) != 1 || m.tally["happy"] != 1 {
		t.Errorf("lines = %+v, tally = %v", m.lines, m.tally)
	}
	if !strings.Contains(m.View(), "happy 1") {
		t.Error("title should show the mood tally")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(BrowserModel)
	if m.open != nil {
		t.Error("esc should return to the session list")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(BrowserModel)
	if !m.quitting || cmd == nil {
		t.Error("esc on the session list should quit")
	}
}
