package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTrackerMonotonic(t *testing.T) {
	tr := NewTracker([3]int64{100, 100, 100})

	tr.Update(0, 50, 100)
	tr.Update(0, 30, 100) // stale report from a slower worker
	tr.Update(0, 80, 100)

	done, total, sum := tr.snapshot()
	if done[0] != 80 {
		t.Errorf("expected monotonic progress 80, got %d", done[0])
	}
	if total != 300 || sum != 80 {
		t.Errorf("unexpected totals %d / sum %d", total, sum)
	}
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(NewTracker([3]int64{1, 1, 1}), make(chan error))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestModelDone(t *testing.T) {
	m := NewModel(NewTracker([3]int64{1, 1, 1}), make(chan error))

	next, cmd := m.Update(doneMsg{err: errors.New("boom")})
	if cmd == nil {
		t.Fatal("expected quit command on completion")
	}
	model := next.(Model)
	if model.Err() == nil {
		t.Error("expected error to be retained")
	}
	if !strings.Contains(model.View(), "render failed") {
		t.Error("expected failure notice in view")
	}
}

func TestModelView(t *testing.T) {
	tr := NewTracker([3]int64{100, 100, 100})
	tr.Update(1, 100, 100)

	m := NewModel(tr, make(chan error))
	next, _ := m.Update(TickMsg(time.Now()))
	view := next.(Model).View()

	for _, name := range channelNames {
		if !strings.Contains(view, name) {
			t.Errorf("expected channel %q in view", name)
		}
	}
	if !strings.Contains(view, "100.0%") {
		t.Error("expected completed green channel at 100%")
	}
}
