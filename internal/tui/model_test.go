package tui

import (
	"io"
	"strings"
	"testing"

	"ai-adib/internal/app"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) *MainModel {
	t.Helper()
	logger := app.NewLogger(io.Discard)
	storage := app.NewFileStateStore(t.TempDir())
	gen := app.NewMockGenerator()
	application := &app.Application{
		Config:  app.DefaultConfig(),
		Logger:  logger,
		Gen:     gen,
		Store:   app.NewStore(storage, gen, logger),
		Storage: storage,
	}
	m := New(application)
	m.width, m.height = 100, 40
	m.resize()
	return m
}

func TestCycleMoodFilterWrapsAround(t *testing.T) {
	m := newTestModel(t)

	seen := map[app.Mood]bool{}
	for range app.Moods() {
		m.cycleMoodFilter()
		seen[m.moodFilter] = true
	}
	for _, mood := range app.Moods() {
		if !seen[mood] {
			t.Fatalf("mood %q never reached by cycling", mood)
		}
	}
	m.cycleMoodFilter()
	if m.moodFilter != app.MoodFilterAll {
		t.Fatalf("cycle must wrap back to the all filter, got %q", m.moodFilter)
	}
}

func TestRunCommandUnknownMoodSetsStatus(t *testing.T) {
	m := newTestModel(t)

	if cmd := m.runCommand("/kayfiyat Nimadir"); cmd != nil {
		t.Fatalf("invalid mood must not dispatch a send")
	}
	if !strings.Contains(m.status, "Noma'lum kayfiyat") {
		t.Fatalf("status: %q", m.status)
	}
}

func TestRunCommandMoodStartSendsWelcome(t *testing.T) {
	m := newTestModel(t)

	cmd := m.runCommand("/kayfiyat Xotirjamlik")
	if cmd == nil {
		t.Fatalf("valid mood must dispatch a send")
	}
	drainCmd(t, m, cmd)

	sessions := m.app.Store.Sessions()
	if len(sessions) != 1 {
		t.Fatalf("mood start must create a session, got %d", len(sessions))
	}
	if sessions[0].Mood != app.MoodCalm {
		t.Fatalf("mood: got %q want %q", sessions[0].Mood, app.MoodCalm)
	}
	if !strings.Contains(sessions[0].Messages[0].Content, "xotirjamlik holati") {
		t.Fatalf("welcome prompt: %q", sessions[0].Messages[0].Content)
	}
}

func TestQuickActionDuelReachesStore(t *testing.T) {
	m := newTestModel(t)

	cmd := m.send(quickActions[0].Prompt, "")
	if cmd == nil {
		t.Fatalf("send must dispatch")
	}
	drainCmd(t, m, cmd)

	sess := m.app.Store.ActiveSession()
	if sess == nil || sess.Title != "Duel boshla! Men tayyorman." {
		t.Fatalf("quick action did not start a duel session")
	}
	if len(sess.Messages) != 2 {
		t.Fatalf("expected round trip, got %d messages", len(sess.Messages))
	}
}

func TestSubmitEmptyInputIsDropped(t *testing.T) {
	m := newTestModel(t)

	if got := m.submitInput(); got != nil {
		t.Fatalf("empty input must not dispatch")
	}
	if len(m.app.Store.Sessions()) != 0 {
		t.Fatalf("empty submit must not create a session")
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("qisqa", 10); got != "qisqa" {
		t.Fatalf("short line must pass through, got %q", got)
	}
	long := "Juda uzun sarlavha matni"
	got := truncateLine(long, 10)
	if len([]rune(got)) != 10 || !strings.HasSuffix(got, "…") {
		t.Fatalf("truncation: got %q", got)
	}
}

// drainCmd executes a command tree, feeding produced messages back into the
// model once. Follow-up commands returned by Update are dropped so ticking
// animations do not loop the test.
func drainCmd(t *testing.T, m *MainModel, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, child := range msg {
			drainCmd(t, m, child)
		}
	case nil:
	default:
		m.Update(msg)
	}
}
