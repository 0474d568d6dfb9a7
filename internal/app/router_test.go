package app

import "testing"

func TestRouteImageIntentWinsRegardlessOfOtherMatches(t *testing.T) {
	// Matches the image pattern and the duel, news and location patterns at
	// once; the image branch must still win.
	prompt := "Duel boshla va bugungi yangiliklar haqidagi g'azalni chizib ber, muzey yonida"
	d := Route(prompt, 10, true)

	if d.Tier != TierImage {
		t.Fatalf("expected image tier, got %s", d.Tier)
	}
	if d.ImageAspectRatio != "1:1" {
		t.Fatalf("expected square aspect ratio, got %q", d.ImageAspectRatio)
	}
	if len(d.Tools) != 0 {
		t.Fatalf("image branch must not attach tools, got %v", d.Tools)
	}
	if d.Temperature != 0.9 {
		t.Fatalf("expected temperature 0.9, got %v", d.Temperature)
	}
	if d.ExtendedReasoning {
		t.Fatalf("image branch must not enable extended reasoning")
	}
}

func TestRoutePrecedenceIsDeterministic(t *testing.T) {
	// Duel and news both match; duel (branch 2) must win over news (branch 4).
	d := Route("Duel boshla! Bugun yangilik bormi?", 0, false)
	if d.Tier != TierReasoning {
		t.Fatalf("expected reasoning tier for duel+news prompt, got %s", d.Tier)
	}
	if d.Temperature != 0.9 {
		t.Fatalf("expected duel temperature 0.9, got %v", d.Temperature)
	}
	if !d.ExtendedReasoning || d.ThinkingBudget != 12000 {
		t.Fatalf("expected extended reasoning with 12000 budget, got %v/%d", d.ExtendedReasoning, d.ThinkingBudget)
	}
	if len(d.Tools) != 0 {
		t.Fatalf("duel branch must not attach tools, got %v", d.Tools)
	}
}

func TestRouteBranches(t *testing.T) {
	tests := []struct {
		name          string
		prompt        string
		historyLength int
		hasAttachment bool
		wantTier      ModelTier
		wantTemp      float32
		wantReasoning bool
		wantTools     []ToolKind
	}{
		{
			name:     "duel intent",
			prompt:   "Duel boshla! Men tayyorman.",
			wantTier: TierReasoning, wantTemp: 0.9, wantReasoning: true,
		},
		{
			name:     "parallel intent",
			prompt:   "Navoiy va Dante o'rtasidagi o'xshashlik haqida gapiring",
			wantTier: TierReasoning, wantTemp: 0.9, wantReasoning: true,
		},
		{
			name:          "attachment without game intent",
			prompt:        "Ushbu she'rning muallifi kim ekanligini ayting, iltimos batafsil tahlil qiling",
			hasAttachment: true,
			wantTier:      TierReasoning, wantTemp: 0.7, wantReasoning: true,
		},
		{
			name:      "location query",
			prompt:    "Menga yaqin kutubxona qayerda joylashgan?",
			wantTier:  TierLocation, wantTemp: 0.7,
			wantTools: []ToolKind{ToolMapLookup},
		},
		{
			name:      "news query",
			prompt:    "Adabiyot olamidagi eng oxirgi voqealar haqida aytib bering, batafsil",
			wantTier:  TierSearch, wantTemp: 0.7,
			wantTools: []ToolKind{ToolWebSearch},
		},
		{
			name:          "short prompt shallow history",
			prompt:        "Salom!",
			historyLength: 2,
			wantTier:      TierLite, wantTemp: 0.7,
		},
		{
			name:          "short prompt deep history falls to default",
			prompt:        "Salom!",
			historyLength: 3,
			wantTier:      TierGeneral, wantTemp: 0.7,
		},
		{
			name:     "long prompt default has reasoning disabled",
			prompt:   "Abdulla Qodiriyning uslubi haqida keng va chuqur fikr yuritib bera olasizmi, iltimos",
			wantTier: TierGeneral, wantTemp: 0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Route(tt.prompt, tt.historyLength, tt.hasAttachment)
			if d.Tier != tt.wantTier {
				t.Fatalf("tier: got %s want %s", d.Tier, tt.wantTier)
			}
			if d.Temperature != tt.wantTemp {
				t.Fatalf("temperature: got %v want %v", d.Temperature, tt.wantTemp)
			}
			if d.ExtendedReasoning != tt.wantReasoning {
				t.Fatalf("extended reasoning: got %v want %v", d.ExtendedReasoning, tt.wantReasoning)
			}
			if len(d.Tools) != len(tt.wantTools) {
				t.Fatalf("tools: got %v want %v", d.Tools, tt.wantTools)
			}
			for i, tool := range tt.wantTools {
				if d.Tools[i] != tool {
					t.Fatalf("tools: got %v want %v", d.Tools, tt.wantTools)
				}
			}
			if d.ExtendedReasoning && d.ThinkingBudget != 12000 {
				t.Fatalf("thinking budget: got %d want 12000", d.ThinkingBudget)
			}
		})
	}
}

func TestRouteShortPromptCountsRunes(t *testing.T) {
	// 49 runes of multi-byte text is still a short prompt.
	prompt := "G'azallar haqida qisqa savol: eng go'zali qaysi?"
	if n := len([]rune(prompt)); n >= shortPromptRunes {
		t.Fatalf("test prompt must be under %d runes, has %d", shortPromptRunes, n)
	}
	d := Route(prompt, 0, false)
	if d.Tier != TierLite {
		t.Fatalf("expected lite tier for short prompt, got %s", d.Tier)
	}
}

func TestRouteIsPure(t *testing.T) {
	prompt := "Solishtir: Otkan kunlar va Urush va tinchlik"
	first := Route(prompt, 5, false)
	for i := 0; i < 3; i++ {
		if got := Route(prompt, 5, false); got.Tier != first.Tier || got.Temperature != first.Temperature {
			t.Fatalf("routing not deterministic: %+v vs %+v", got, first)
		}
	}
}
