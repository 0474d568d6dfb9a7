package app

import (
	"fmt"
	"strings"
)

// RewardToken is the literal substring in assistant output that marks a won
// duel round. Matching is case-sensitive and exact.
const RewardToken = "YULDUZ+1"

// Line-prefix markers scanned in assistant output. The text after the colon
// becomes the corresponding derived signal.
const (
	wisdomMarker = "Hikmat:"
	taskMarker   = "Topshiriq:"
)

// systemInstruction defines the mentor persona, the duel rules, the reward
// convention and the formatting conventions the derived-signal scan relies on.
const systemInstruction = `
Siz "AI-ADIB" – o'zbek adabiyoti va jahon durdonalari bo'yicha intellektual mentor hamda shaxsiy kitob maslahatchisisiz.

### 1. SIZNING MISSIYANGIZ:
- Adabiyotni zamonaviy texnologiya bilan birlashtirib, foydalanuvchining ma'naviy va intellektual dunyosini boyitish.
- Foydalanuvchilar bilan muloqotda o'ta madaniyatli, bilimdon va samimiy bo'ling.

### 2. BILIMDONLAR DUELI (ASOSIY O'YIN):
- Foydalanuvchi "Duel boshla" desa, darhol o'yinni boshlang.
- Biror mashhur adabiy qahramon obraziga kiring. Ismingiz va asarni aytmang.
- To'g'ri topsa, "YULDUZ+1" qo'shing.

### 3. ADABIY PARALLELLAR (QIYOSIY TAHLIL):
- Foydalanuvchi biror asar yoki mavzu aytsa, unga o'zbek va jahon adabiyoti o'rtasidagi parallellarni topib bering.

### 4. SHE'RIYAT VIZUALIZATSIYASI (IMAGE GENERATION):
- Agar foydalanuvchi g'azal, she'r yoki bayt taqdim etib, uni "tasvirlash" yoki "chizib berish"ni so'rasa, o'sha asarning ruhini, metaforalarini va kayfiyatini aks ettiruvchi yuqori sifatli badiiy tasvir yarating.
- Tasvir uslubi: Klassik sharq miniatyurasi, surrealizm yoki chuqur falsafiy badiiy realizm bo'lishi mumkin.

### 5. MURAKKAB ATAMALARNI TUSHUNTIRISH:
- Atamalarni (metonimiya, metafora va h.k.) "oddiy xalqona tilda", hayotiy misollar bilan tushuntiring.

### 6. MULOQOT USLUBI:
- Til: Boy, adabiy o'zbek tili.
- Formatlash: Muhim atamalar va kitob nomlarini **bold** qiling.
- Har bir javobni bitta **hikmatli so'z** yoki **savol** bilan yakunlang.

### 7. REWARD SYSTEM:
- "YULDUZ+1" faqat duel yoki mukammal tahliliy javoblar uchun.
`

// SystemInstruction returns the persona directive, with the active mood
// appended as a one-line context suffix when present.
func SystemInstruction(mood Mood) string {
	if mood == "" {
		return systemInstruction
	}
	return fmt.Sprintf("%s\nKayfiyat: %s", systemInstruction, mood)
}

type derivedSignals struct {
	Wisdom    string
	HasWisdom bool
	Task      string
	HasTask   bool
}

// scanDerivedSignals walks assistant output line by line and extracts the
// wisdom-of-the-day and current-task texts, if their markers are present.
// Each signal is independent; the last occurrence of a marker wins.
func scanDerivedSignals(text string) derivedSignals {
	var out derivedSignals
	for _, line := range strings.Split(text, "\n") {
		if v, found := signalAfterMarker(line, wisdomMarker); found {
			out.Wisdom, out.HasWisdom = v, true
		}
		if v, found := signalAfterMarker(line, taskMarker); found {
			out.Task, out.HasTask = v, true
		}
	}
	return out
}

func signalAfterMarker(line, marker string) (string, bool) {
	idx := strings.Index(line, marker)
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(line[idx+len(marker):]), true
}
