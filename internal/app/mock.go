package app

import "context"

// MockGenerator is used when no API key is configured. Replies are canned
// per intent so the interface stays demonstrable offline; the duel reply
// carries the reward token and signal markers the store reacts to.
type MockGenerator struct{}

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

func (m *MockGenerator) Generate(_ context.Context, req GenerateRequest) GenerateResult {
	if req.Attachment != nil {
		return GenerateResult{Text: "Rasmda klassik sharq miniatyurasi uslubidagi kompozitsiya ko'rinadi. Ranglar va metaforalar haqida savol bering."}
	}

	switch {
	case duelIntentRe.MatchString(req.Prompt):
		return GenerateResult{Text: "Duel boshlandi! Men bir adabiy qahramonman: sahroda ulg'aygan, muhabbat dardida devona bo'lgan shoirman. Kimman?\n\nTopshiriq: Qahramonning asarini ham ayting."}
	case parallelIntentRe.MatchString(req.Prompt):
		return GenerateResult{Text: "Ajoyib savol! **Alisher Navoiy**ning \"Layli va Majnun\" dostoni bilan **Shekspir**ning \"Romeo va Juletta\"si o'rtasida kutilmagan parallellar bor. YULDUZ+1\n\nHikmat: Muhabbat barcha adabiyotlarning umumiy tilidir."}
	case imageGenIntentRe.MatchString(req.Prompt):
		return GenerateResult{
			Text:     "Tasvir yaratildi.",
			ImageURL: "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg==",
		}
	case newsQueryRe.MatchString(req.Prompt):
		return GenerateResult{
			Text: "Bugungi adabiyot olamidan: yangi tarjimalar va mukofotlar haqida qisqacha.",
			GroundingSources: []GroundingSource{
				{Title: "Adabiyot yangiliklari", URI: "https://example.com/adabiyot"},
			},
		}
	case locationQueryRe.MatchString(req.Prompt):
		return GenerateResult{
			Text: "Sizga yaqin kutubxonalar ro'yxati tayyor.",
			GroundingSources: []GroundingSource{
				{Title: "Milliy kutubxona", URI: "https://maps.example.com/milliy-kutubxona"},
			},
		}
	default:
		return GenerateResult{Text: "Adabiyot olamiga xush kelibsiz! Qaysi asar yoki mavzu haqida suhbatlashamiz?\n\nHikmat: Kitob — eng sodiq suhbatdosh."}
	}
}
