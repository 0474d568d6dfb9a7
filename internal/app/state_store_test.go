package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileStateStoreSessionsRoundTrip(t *testing.T) {
	store := NewFileStateStore(t.TempDir())

	sessions := []*ChatSession{
		{
			ID:    "s1",
			Title: "Navoiy g'azallari",
			Mood:  MoodCalm,
			Messages: []Message{
				{ID: "m1", Role: RoleUser, Content: "G'azal haqida", Timestamp: time.Now()},
				{ID: "m2", Role: RoleAssistant, Content: "Javob", GroundingSources: []GroundingSource{{Title: "Manba", URI: "https://example.com"}}},
			},
			UpdatedAt: time.Now(),
		},
		{ID: "s2", Title: "Yangi muloqot"},
	}
	if err := store.SaveSessions(sessions); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.LoadSessions()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(got))
	}
	if got[0].ID != "s1" || got[0].Mood != MoodCalm || len(got[0].Messages) != 2 {
		t.Fatalf("first session did not survive the round trip: %+v", got[0])
	}
	if got[0].Messages[1].GroundingSources[0].URI != "https://example.com" {
		t.Fatalf("grounding sources did not survive the round trip")
	}
}

func TestFileStateStoreMissingFilesReadAsEmpty(t *testing.T) {
	store := NewFileStateStore(filepath.Join(t.TempDir(), "never-written"))

	sessions, err := store.LoadSessions()
	if err != nil || len(sessions) != 0 {
		t.Fatalf("missing sessions file: got %d sessions, err %v", len(sessions), err)
	}
	stars, err := store.LoadStars()
	if err != nil || stars != 0 {
		t.Fatalf("missing stars file: got %d, err %v", stars, err)
	}
	theme, err := store.LoadTheme()
	if err != nil || theme != "" {
		t.Fatalf("missing theme file: got %q, err %v", theme, err)
	}
}

func TestFileStateStoreCorruptSessionsReadAsEmpty(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStateStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "sessions.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	sessions, err := store.LoadSessions()
	if err == nil {
		t.Fatalf("corrupt file should surface an error for logging")
	}
	if len(sessions) != 0 {
		t.Fatalf("corrupt file must read as empty, got %d sessions", len(sessions))
	}
}

func TestFileStateStoreStars(t *testing.T) {
	store := NewFileStateStore(t.TempDir())

	if err := store.SaveStars(7); err != nil {
		t.Fatalf("save: %v", err)
	}
	stars, err := store.LoadStars()
	if err != nil || stars != 7 {
		t.Fatalf("got %d, err %v", stars, err)
	}
}

func TestFileStateStoreCorruptStarsReadAsZero(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStateStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "stars"), []byte("ko'p"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	stars, _ := store.LoadStars()
	if stars != 0 {
		t.Fatalf("corrupt stars must read as 0, got %d", stars)
	}
}

func TestFileStateStoreTheme(t *testing.T) {
	store := NewFileStateStore(t.TempDir())

	if err := store.SaveTheme("dark"); err != nil {
		t.Fatalf("save: %v", err)
	}
	theme, err := store.LoadTheme()
	if err != nil || theme != "dark" {
		t.Fatalf("got %q, err %v", theme, err)
	}
}

func TestStoreHydratesFromStorage(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStateStore(dir)
	if err := storage.SaveSessions([]*ChatSession{{ID: "old", Title: "Eski suhbat"}}); err != nil {
		t.Fatalf("seed sessions: %v", err)
	}
	if err := storage.SaveStars(3); err != nil {
		t.Fatalf("seed stars: %v", err)
	}

	store := NewStore(storage, &scriptedGenerator{}, NewLogger(io.Discard))
	if len(store.Sessions()) != 1 || store.Sessions()[0].ID != "old" {
		t.Fatalf("sessions were not hydrated")
	}
	if store.Stars() != 3 {
		t.Fatalf("stars were not hydrated, got %d", store.Stars())
	}
	if store.ActiveSessionID() != "" {
		t.Fatalf("hydration must not pick an active session")
	}
}
