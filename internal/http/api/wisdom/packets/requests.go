package packets

import (
	"strings"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/model"
)

// REQUESTS FOR /api/reflections

// ReflectRequest is a hadith previously returned by /api/hadith/*.
type ReflectRequest struct {
	ID          string  `json:"id"`
	Collection  string  `json:"collection" binding:"required"`
	BookName    *string `json:"bookName"`
	ChapterName *string `json:"chapterName"`
	TextEnglish string  `json:"textEnglish" binding:"required"`
	TextArabic  *string `json:"textArabic"`
	Narrator    *string `json:"narrator"`
	Reference   *string `json:"reference"`
}

// ToHadith trims the request into a model.Hadith.
func (r ReflectRequest) ToHadith() model.Hadith {
	return model.Hadith{
		ID:          strings.TrimSpace(r.ID),
		Collection:  strings.TrimSpace(r.Collection),
		BookName:    trimmed(r.BookName),
		ChapterName: trimmed(r.ChapterName),
		TextEnglish: strings.TrimSpace(r.TextEnglish),
		TextArabic:  trimmed(r.TextArabic),
		Narrator:    trimmed(r.Narrator),
		Reference:   trimmed(r.Reference),
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
