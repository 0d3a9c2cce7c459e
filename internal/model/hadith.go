package model

// Hadith is one narration fetched from an upstream collection.
// Optional fields are nil when the upstream did not provide them.
type Hadith struct {
	ID          string  `json:"id"`
	Collection  string  `json:"collection"`
	BookName    *string `json:"bookName,omitempty"`
	ChapterName *string `json:"chapterName,omitempty"`
	TextEnglish string  `json:"textEnglish"`
	TextArabic  *string `json:"textArabic,omitempty"`
	Narrator    *string `json:"narrator,omitempty"`
	Reference   *string `json:"reference,omitempty"`
}

// Reflections is the ordered list of short reminders generated for a hadith.
type Reflections []string

// Wisdom pairs a hadith with a proverb for one refresh of the home screen.
type Wisdom struct {
	Hadith  Hadith  `json:"hadith"`
	Proverb Proverb `json:"proverb"`
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
