package app

import (
	"strings"
	"testing"
)

func TestSystemInstructionMoodSuffix(t *testing.T) {
	base := SystemInstruction("")
	if strings.Contains(base, "Kayfiyat:") {
		t.Fatalf("no mood must mean no mood suffix")
	}

	withMood := SystemInstruction(MoodMotivation)
	if !strings.HasPrefix(withMood, base) {
		t.Fatalf("mood suffix must append, not rewrite, the persona text")
	}
	if !strings.HasSuffix(withMood, "Kayfiyat: Motivatsiya") {
		t.Fatalf("unexpected suffix: %q", withMood[len(withMood)-40:])
	}
}

func TestScanDerivedSignals(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantWisdom string
		hasWisdom  bool
		wantTask   string
		hasTask    bool
	}{
		{
			name: "both markers",
			text: "Yaxshi javob.\nHikmat: Ilm — boylik.\nTopshiriq: Bir bayt yod oling.",
			wantWisdom: "Ilm — boylik.", hasWisdom: true,
			wantTask: "Bir bayt yod oling.", hasTask: true,
		},
		{
			name: "marker mid line",
			text: "Shunday qilib, Hikmat: Sabr tagi oltin.",
			wantWisdom: "Sabr tagi oltin.", hasWisdom: true,
		},
		{
			name: "last occurrence wins",
			text: "Hikmat: birinchisi\nHikmat: ikkinchisi",
			wantWisdom: "ikkinchisi", hasWisdom: true,
		},
		{
			name:       "marker with empty payload",
			text:       "Hikmat:",
			wantWisdom: "", hasWisdom: true,
		},
		{
			name: "no markers",
			text: "Oddiy javob, belgilar yo'q.",
		},
		{
			name:     "task only",
			text:     "Topshiriq: Roman o'qing.",
			wantTask: "Roman o'qing.", hasTask: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanDerivedSignals(tt.text)
			if got.HasWisdom != tt.hasWisdom || got.Wisdom != tt.wantWisdom {
				t.Fatalf("wisdom: got (%q,%v) want (%q,%v)", got.Wisdom, got.HasWisdom, tt.wantWisdom, tt.hasWisdom)
			}
			if got.HasTask != tt.hasTask || got.Task != tt.wantTask {
				t.Fatalf("task: got (%q,%v) want (%q,%v)", got.Task, got.HasTask, tt.wantTask, tt.hasTask)
			}
		})
	}
}

func TestParseMood(t *testing.T) {
	for _, m := range Moods() {
		got, ok := ParseMood(string(m))
		if !ok || got != m {
			t.Fatalf("ParseMood(%q) = (%q,%v)", m, got, ok)
		}
	}
	if _, ok := ParseMood("Nomalum"); ok {
		t.Fatalf("unknown mood must not parse")
	}
}
