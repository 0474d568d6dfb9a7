package app

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// StateStore persists the three independent slices of application state:
// the session collection, the theme preference and the star count. Each
// slice is written in full on every change; last write wins.
//
// Load methods treat missing or unparseable data as absent rather than
// failing, so a corrupt file degrades to an empty state.
type StateStore interface {
	LoadSessions() ([]*ChatSession, error)
	SaveSessions(sessions []*ChatSession) error

	LoadStars() (int, error)
	SaveStars(stars int) error

	LoadTheme() (string, error)
	SaveTheme(theme string) error
}

// FileStateStore keeps each slice in its own file under a storage root:
//
//	<root>/sessions.json
//	<root>/stars
//	<root>/theme
type FileStateStore struct {
	Root string
}

func DefaultStorageRoot() string {
	// Prefer XDG data dir (Linux/macOS). If unavailable, fall back to ~/.local/share.
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, "ai-adib", "storage")
	}
	if base, err := os.UserHomeDir(); err == nil && base != "" {
		return filepath.Join(base, ".local", "share", "ai-adib", "storage")
	}
	return filepath.Join(os.TempDir(), "ai-adib", "storage")
}

func NewFileStateStore(root string) *FileStateStore {
	if strings.TrimSpace(root) == "" {
		root = DefaultStorageRoot()
	}
	return &FileStateStore{Root: filepath.Clean(root)}
}

func (s *FileStateStore) sessionsPath() string { return filepath.Join(s.Root, "sessions.json") }
func (s *FileStateStore) starsPath() string    { return filepath.Join(s.Root, "stars") }
func (s *FileStateStore) themePath() string    { return filepath.Join(s.Root, "theme") }

func (s *FileStateStore) LoadSessions() ([]*ChatSession, error) {
	b, err := os.ReadFile(s.sessionsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*ChatSession{}, nil
		}
		return []*ChatSession{}, err
	}
	var sessions []*ChatSession
	if err := json.Unmarshal(b, &sessions); err != nil {
		// Corrupt store reads as empty; the caller logs and moves on.
		return []*ChatSession{}, err
	}
	if sessions == nil {
		sessions = []*ChatSession{}
	}
	return sessions, nil
}

func (s *FileStateStore) SaveSessions(sessions []*ChatSession) error {
	if sessions == nil {
		sessions = []*ChatSession{}
	}
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.sessionsPath(), b, 0o644)
}

func (s *FileStateStore) LoadStars() (int, error) {
	b, err := os.ReadFile(s.starsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil || n < 0 {
		return 0, err
	}
	return n, nil
}

func (s *FileStateStore) SaveStars(stars int) error {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.starsPath(), []byte(strconv.Itoa(stars)), 0o644)
}

func (s *FileStateStore) LoadTheme() (string, error) {
	b, err := os.ReadFile(s.themePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileStateStore) SaveTheme(theme string) error {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.themePath(), []byte(strings.TrimSpace(theme)), 0o644)
}
