package reflection

import (
	"fmt"
	"strings"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/model"
)

const systemPrompt = `You help Muslims reflect on authentic hadith by generating short Islamic wisdom reminders.
You DO NOT invent new hadith or Qur'anic verses.
You DO NOT attribute new statements directly to the Prophet.
You ONLY produce short motivational reflections inspired by the meaning of the hadith.
Write in simple, clear English.`

// userPrompt embeds the hadith and asks for exactly count numbered lines.
func userPrompt(h model.Hadith, count int) string {
	reference := "N/A"
	if h.Reference != nil {
		reference = *h.Reference
	}
	narrator := ""
	if h.Narrator != nil {
		narrator = *h.Narrator
	}

	var b strings.Builder
	b.WriteString("Here is a hadith:\n\n")
	fmt.Fprintf(&b, "Collection: %s\n", h.Collection)
	fmt.Fprintf(&b, "Reference: %s\n", reference)
	fmt.Fprintf(&b, "Narration header: %s\n", narrator)
	fmt.Fprintf(&b, "Text: %s\n\n", h.TextEnglish)
	fmt.Fprintf(&b, "Based on the meaning of this hadith, generate %d SHORT Islamic reflections.\n\n", count)
	b.WriteString("Rules:\n")
	b.WriteString("- 1-2 sentences each.\n")
	b.WriteString("- Do NOT say \"The Prophet said...\" or quote as hadith.\n")
	b.WriteString("- Do NOT claim this is Qur'an or hadith.\n")
	b.WriteString("- Just write general reminders (hikmah) about iman, character, patience, etc.\n\n")
	b.WriteString("Format exactly like:\n")
	for i := 1; i <= count; i++ {
		fmt.Fprintf(&b, "%d. ...\n", i)
	}
	return b.String()
}
