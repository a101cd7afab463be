package cli

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"

	"github.com/topoviz/topoviz/pkg/pipeline"
)

func testWatchModel(t *testing.T) watchModel {
	t.Helper()
	return watchModel{
		path:     writeTestSnapshot(t),
		interval: time.Second,
		opts:     pipeline.Options{Logger: newLogger(io.Discard, charmlog.ErrorLevel)},
	}
}

func TestWatchPoll(t *testing.T) {
	m := testWatchModel(t)

	msg := m.poll()
	stats, ok := msg.(watchStats)
	if !ok {
		t.Fatalf("poll() returned %T", msg)
	}
	if stats.err != nil {
		t.Fatalf("poll() error: %v", stats.err)
	}
	if stats.nodes != 2 {
		t.Errorf("nodes = %d, want 2", stats.nodes)
	}
	if len(stats.rows) != 3 {
		t.Errorf("rows = %d, want one per category", len(stats.rows))
	}

	// /chatter is the only channel, a topic.
	if stats.rows[0].channels != 1 {
		t.Errorf("topic channels = %d, want 1", stats.rows[0].channels)
	}
	if stats.rows[1].channels != 0 || stats.rows[2].channels != 0 {
		t.Errorf("service/action channels should be 0: %+v", stats.rows)
	}
}

func TestWatchPollMissingSnapshot(t *testing.T) {
	m := testWatchModel(t)
	m.path = "/nonexistent/topology.json"

	stats := m.poll().(watchStats)
	if stats.err == nil {
		t.Error("poll() should report a read failure")
	}
}

func TestWatchUpdateQuit(t *testing.T) {
	m := testWatchModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("q produced %v, want quit", msg)
	}
}

func TestWatchUpdateStats(t *testing.T) {
	m := testWatchModel(t)

	next, cmd := m.Update(watchStats{nodes: 5, at: time.Now()})
	model := next.(watchModel)
	if !model.polled {
		t.Error("stats message should mark the model as polled")
	}
	if cmd == nil {
		t.Error("stats message should schedule the next tick")
	}
}

func TestWatchView(t *testing.T) {
	m := testWatchModel(t)

	if view := m.View(); !strings.Contains(view, "waiting") {
		t.Errorf("initial view should show waiting state:\n%s", view)
	}

	stats := m.poll().(watchStats)
	next, _ := m.Update(stats)
	view := next.(watchModel).View()

	for _, want := range []string{"topics", "services", "actions", "2 nodes"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
