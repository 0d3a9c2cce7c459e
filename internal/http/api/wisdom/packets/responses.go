package packets

import "github.com/shueibka/Daily-Islamic-Wisdom/internal/model"

// RESPONSES FOR /api/*

type ProverbListResponse struct {
	Category *model.Category `json:"category,omitempty"`
	Count    int             `json:"count"`
	Proverbs []model.Proverb `json:"proverbs"`
}

type CategoriesResponse struct {
	Categories []model.Category `json:"categories"`
}

type ReflectionsResponse struct {
	Hadith      model.Hadith `json:"hadith"`
	Reflections []string     `json:"reflections"`
}

type BroadcastResponse struct {
	Topic  string       `json:"topic"`
	Wisdom model.Wisdom `json:"wisdom"`
}
