package hadith

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/model"
)

// randomHadithResponse is the envelope returned by the random-hadith-generator API.
type randomHadithResponse struct {
	Data *randomHadithData `json:"data"`
}

type randomHadithData struct {
	ID            json.RawMessage `json:"id"`
	Book          *string         `json:"book"`
	BookName      *string         `json:"bookName"`
	ChapterName   *string         `json:"chapterName"`
	HadithEnglish *string         `json:"hadith_english"`
	HadithArabic  *string         `json:"hadith_arabic"`
	Header        *string         `json:"header"`
	RefNo         *string         `json:"refno"`
}

// decodeHadith parses an upstream body and maps it onto model.Hadith.
// fallback names the collection when the body carries no book name.
func decodeHadith(body []byte, fallback Collection) (*model.Hadith, error) {
	var resp randomHadithResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if resp.Data == nil {
		return nil, errors.New(`missing "data" object`)
	}
	return mapHadith(resp.Data, fallback)
}

func mapHadith(dto *randomHadithData, fallback Collection) (*model.Hadith, error) {
	id, err := coerceID(dto.ID)
	if err != nil {
		return nil, err
	}

	text := trimmed(dto.HadithEnglish)
	if text == nil {
		return nil, errors.New(`missing "hadith_english"`)
	}

	collection := fallback.DisplayName()
	if book := trimmed(dto.Book); book != nil {
		collection = *book
	}

	return &model.Hadith{
		ID:          id,
		Collection:  collection,
		BookName:    trimmed(dto.BookName),
		ChapterName: trimmed(dto.ChapterName),
		TextEnglish: *text,
		TextArabic:  trimmed(dto.HadithArabic),
		Narrator:    trimmed(dto.Header),
		Reference:   trimmed(dto.RefNo),
	}, nil
}

// coerceID turns a numeric or string identifier into its string form.
func coerceID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", errors.New(`missing "id"`)
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("decode id: %w", err)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return "", errors.New(`empty "id"`)
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("id is neither string nor number: %s", raw)
	}
	if !strings.ContainsAny(n.String(), ".eE") {
		return n.String(), nil
	}
	// 42.0 and 1e2 are whole numbers too.
	f, err := strconv.ParseFloat(n.String(), 64)
	if err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
	return n.String(), nil
}

// trimmed returns nil for absent or blank values, otherwise the trimmed value.
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
