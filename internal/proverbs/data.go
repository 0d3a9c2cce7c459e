package proverbs

import "github.com/shueibka/Daily-Islamic-Wisdom/internal/model"

// Ids are stable; clients may refer to them.
var builtin = []model.Proverb{
	{ID: "p1", Category: model.CategoryPatience, Text: "Patience is the key to relief."},
	{ID: "p2", Category: model.CategoryPatience, Text: "Every hardship carries a hidden gift from Allah."},
	{ID: "p3", Category: model.CategoryGratitude, Text: "A thankful heart sees blessings where others see nothing."},
	{ID: "p4", Category: model.CategoryGratitude, Text: "Gratitude turns little into enough."},
	{ID: "p5", Category: model.CategoryDiscipline, Text: "The one who controls their soul is truly strong."},
	{ID: "p6", Category: model.CategoryTawakkul, Text: "Tie your camel and trust in Allah."},
	{ID: "p7", Category: model.CategoryHope, Text: "No dua is lost with Allah, it returns as mercy in ways you may not see."},
	{ID: "p8", Category: model.CategorySincerity, Text: "A small deed done sincerely is greater than a big deed done to be seen."},
	{ID: "p9", Category: model.CategoryHope, Text: "After the deepest night comes the brightest dawn."},
	{ID: "p10", Category: model.CategoryDiscipline, Text: "Consistency in good deeds builds a heart that is close to Allah."},
}
