package app

import (
	"strings"
	"time"
)

// Mood is a descriptive tag attached to a session. Values are the product's
// working-language labels and are stored verbatim.
type Mood string

const (
	MoodStress      Mood = "Stress"
	MoodMotivation  Mood = "Motivatsiya"
	MoodSadness     Mood = "Qayg'u"
	MoodExploration Mood = "Izlanish"
	MoodCalm        Mood = "Xotirjamlik"
)

// Moods lists every mood in display order.
func Moods() []Mood {
	return []Mood{MoodStress, MoodMotivation, MoodSadness, MoodExploration, MoodCalm}
}

func ParseMood(value string) (Mood, bool) {
	v := strings.TrimSpace(value)
	for _, m := range Moods() {
		if strings.EqualFold(v, string(m)) {
			return m, true
		}
	}
	return Mood(""), false
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// GroundingSource is a citation returned alongside generated text when a
// search or map tool contributed to the answer.
type GroundingSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Message is immutable once created and owned by its parent session.
// ImageURL, when set, is a data URI (either an uploaded attachment echoed on
// the user message or a generated image on the assistant message).
type Message struct {
	ID               string            `json:"id"`
	Role             Role              `json:"role"`
	Content          string            `json:"content"`
	ImageURL         string            `json:"image_url,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	GroundingSources []GroundingSource `json:"grounding_sources,omitempty"`
}

// ChatSession is one conversation thread. Messages are append-only and
// ordered; UpdatedAt refreshes on every append.
type ChatSession struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	Mood      Mood      `json:"mood,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
