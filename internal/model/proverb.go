package model

import (
	"fmt"
	"strings"
)

// Category is the theme a proverb is filed under.
type Category string

const (
	CategoryPatience   Category = "Patience"
	CategoryGratitude  Category = "Gratitude"
	CategoryDiscipline Category = "Discipline"
	CategoryTawakkul   Category = "Tawakkul"
	CategorySincerity  Category = "Sincerity"
	CategoryHope       Category = "Hope"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryPatience,
		CategoryGratitude,
		CategoryDiscipline,
		CategoryTawakkul,
		CategorySincerity,
		CategoryHope,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory accepts a category name in any letter case.
func ParseCategory(s string) (Category, error) {
	for _, known := range Categories() {
		if strings.EqualFold(string(known), strings.TrimSpace(s)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Proverb is a short saying shown next to the daily hadith.
type Proverb struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Text     string   `json:"text"`
	Source   *string  `json:"source,omitempty"`
}
