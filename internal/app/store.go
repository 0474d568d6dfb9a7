package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// defaultSessionTitle is used when the first message has no usable text
// (whitespace-only content with an attachment).
const defaultSessionTitle = "Yangi muloqot"

const titleRuneLimit = 40

// MoodFilterAll matches every mood in FilterSessions.
const MoodFilterAll Mood = "all"

// Store owns the chat sessions, the active-session pointer, the star count
// and the derived wisdom/task signals. All transitions hold the store mutex;
// the generation call inside SendMessage is the only suspension point and
// runs unlocked, so selection, filtering and deletion stay responsive while
// a reply is pending.
type Store struct {
	mu      sync.Mutex
	storage StateStore
	gen     Generator
	log     *Logger

	sessions []*ChatSession // newest first
	activeID string
	loading  bool
	wisdom   string
	task     string
	stars    int

	location *LatLng
	onReward func()
}

func NewStore(storage StateStore, gen Generator, logger *Logger) *Store {
	s := &Store{storage: storage, gen: gen, log: logger}

	sessions, err := storage.LoadSessions()
	if err != nil {
		logger.Error("failed to load saved sessions", map[string]interface{}{"error": err.Error()})
	}
	s.sessions = sessions

	stars, err := storage.LoadStars()
	if err != nil {
		logger.Error("failed to load star count", map[string]interface{}{"error": err.Error()})
	}
	s.stars = stars

	return s
}

// SetLocation records the last-known user coordinates, passed to map-tool
// calls as retrieval bias.
func (s *Store) SetLocation(loc *LatLng) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = loc
}

// SetOnReward registers the transient reward-visual callback, invoked once
// per reward token seen in assistant output.
func (s *Store) SetOnReward(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onReward = fn
}

// Sessions returns a snapshot of the collection. Callers get their own
// copies; the in-flight send goroutine keeps appending to the live slices.
func (s *Store) Sessions() []*ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*ChatSession, len(s.sessions))
	for i, sess := range s.sessions {
		out[i] = cloneSession(sess)
	}
	return out
}

func (s *Store) ActiveSession() *ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess := s.findSessionLocked(s.activeID); sess != nil {
		return cloneSession(sess)
	}
	return nil
}

func (s *Store) ActiveSessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) Stars() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stars
}

func (s *Store) WisdomOfTheDay() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wisdom
}

func (s *Store) CurrentTask() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.task
}

// StartNewSession clears the active pointer and derived signals. Existing
// sessions are untouched; the next SendMessage creates a fresh session.
func (s *Store) StartNewSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = ""
	s.wisdom = ""
	s.task = ""
}

// SelectSession sets the active pointer. Unknown ids are ignored.
func (s *Store) SelectSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findSessionLocked(id) == nil {
		return
	}
	s.activeID = id
}

// DeleteSession removes the session with the given id. Deleting the active
// session clears the active pointer. Idempotent.
func (s *Store) DeleteSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.sessions[:0]
	removed := false
	for _, sess := range s.sessions {
		if sess.ID == id {
			removed = true
			continue
		}
		kept = append(kept, sess)
	}
	if !removed {
		return
	}
	s.sessions = kept
	if s.activeID == id {
		s.activeID = ""
	}
	s.persistSessionsLocked()
}

// ClearAllSessions empties the session collection and clears the active
// pointer and derived signals. Stars persist independently. The caller is
// responsible for confirming the destructive action first.
func (s *Store) ClearAllSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = []*ChatSession{}
	s.activeID = ""
	s.wisdom = ""
	s.task = ""
	s.persistSessionsLocked()
}

// FilterSessions returns snapshots of the sessions whose title or message
// content contains searchTerm (case-insensitive) and whose mood matches
// moodFilter (MoodFilterAll or empty matches every mood). Pure view; order
// preserved.
func (s *Store) FilterSessions(searchTerm string, moodFilter Mood) []*ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	term := strings.ToLower(searchTerm)
	var out []*ChatSession
	for _, sess := range s.sessions {
		if moodFilter != "" && moodFilter != MoodFilterAll && sess.Mood != moodFilter {
			continue
		}
		if term != "" && !sessionContains(sess, term) {
			continue
		}
		out = append(out, cloneSession(sess))
	}
	return out
}

// cloneSession copies the session header and its message slice. Message
// values are immutable once appended, so element-level copies suffice.
func cloneSession(sess *ChatSession) *ChatSession {
	out := *sess
	out.Messages = append([]Message(nil), sess.Messages...)
	return &out
}

func sessionContains(sess *ChatSession, lowerTerm string) bool {
	if strings.Contains(strings.ToLower(sess.Title), lowerTerm) {
		return true
	}
	for _, m := range sess.Messages {
		if strings.Contains(strings.ToLower(m.Content), lowerTerm) {
			return true
		}
	}
	return false
}

// SendMessage runs one full round-trip: append the user message (creating a
// session when none is active), invoke the generator, then fold the reply
// back into the store. It returns the assistant message and true on a
// completed round-trip, or nil and false when the send was dropped (empty
// content without attachment, or another send already in flight).
func (s *Store) SendMessage(ctx context.Context, content string, attachment *Attachment, moodOverride Mood) (*Message, bool) {
	s.mu.Lock()
	if (strings.TrimSpace(content) == "" && attachment == nil) || s.loading {
		s.mu.Unlock()
		return nil, false
	}

	now := time.Now()
	userMsg := Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: now,
	}
	if attachment != nil {
		userMsg.ImageURL = attachment.DataURI()
	}

	var sess *ChatSession
	if s.activeID == "" {
		sess = &ChatSession{
			ID:        uuid.NewString(),
			Title:     deriveTitle(content),
			Messages:  []Message{userMsg},
			Mood:      moodOverride,
			UpdatedAt: now,
		}
		s.sessions = append([]*ChatSession{sess}, s.sessions...)
		s.activeID = sess.ID
	} else {
		sess = s.findSessionLocked(s.activeID)
		sess.Messages = append(sess.Messages, userMsg)
		sess.UpdatedAt = now
		if moodOverride != "" {
			sess.Mood = moodOverride
		}
	}

	mood := moodOverride
	if mood == "" {
		mood = sess.Mood
	}

	// Prior turns only; the prompt itself travels separately.
	history := make([]HistoryTurn, 0, len(sess.Messages)-1)
	for _, m := range sess.Messages[:len(sess.Messages)-1] {
		history = append(history, HistoryTurn{Role: m.Role, Content: m.Content})
	}

	sessionID := sess.ID
	location := s.location
	s.loading = true
	s.persistSessionsLocked()
	s.mu.Unlock()

	result := s.gen.Generate(ctx, GenerateRequest{
		Prompt:     content,
		History:    history,
		Mood:       mood,
		Attachment: attachment,
		Location:   location,
	})

	s.mu.Lock()
	assistantMsg := Message{
		ID:               uuid.NewString(),
		Role:             RoleAssistant,
		Content:          result.Text,
		ImageURL:         result.ImageURL,
		Timestamp:        time.Now(),
		GroundingSources: result.GroundingSources,
	}

	rewarded := strings.Contains(result.Text, RewardToken)
	if rewarded {
		s.stars++
		s.persistStarsLocked()
	}

	signals := scanDerivedSignals(result.Text)
	if signals.HasWisdom {
		s.wisdom = signals.Wisdom
	}
	if signals.HasTask {
		s.task = signals.Task
	}

	// The session may have been deleted while the call was in flight; the
	// reply is dropped in that case, but stars and signals still apply.
	if target := s.findSessionLocked(sessionID); target != nil {
		target.Messages = append(target.Messages, assistantMsg)
		target.UpdatedAt = assistantMsg.Timestamp
	}
	s.loading = false
	s.persistSessionsLocked()
	onReward := s.onReward
	s.mu.Unlock()

	if rewarded && onReward != nil {
		onReward()
	}
	return &assistantMsg, true
}

func (s *Store) findSessionLocked(id string) *ChatSession {
	if id == "" {
		return nil
	}
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess
		}
	}
	return nil
}

func (s *Store) persistSessionsLocked() {
	if err := s.storage.SaveSessions(s.sessions); err != nil {
		s.log.Error("failed to persist sessions", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Store) persistStarsLocked() {
	if err := s.storage.SaveStars(s.stars); err != nil {
		s.log.Error("failed to persist stars", map[string]interface{}{"error": err.Error()})
	}
}

func deriveTitle(content string) string {
	if strings.TrimSpace(content) == "" {
		return defaultSessionTitle
	}
	runes := []rune(content)
	if len(runes) > titleRuneLimit {
		return string(runes[:titleRuneLimit]) + "..."
	}
	return content
}
