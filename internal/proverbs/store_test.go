package proverbs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/model"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/proverbs"
)

type fixedRand struct{ next int }

func (f *fixedRand) IntN(n int) int { return f.next % n }

func TestDefaultStoreIsValid(t *testing.T) {
	store := proverbs.Default()
	all := store.All()
	require.NotEmpty(t, all)

	for _, p := range all {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Text)
		assert.True(t, p.Category.Valid(), "proverb %s has category %q", p.ID, p.Category)
	}
}

func TestByCategoryPartitionsAll(t *testing.T) {
	store := proverbs.Default()
	all := store.All()

	var union []model.Proverb
	for _, c := range model.Categories() {
		matched := store.ByCategory(c)
		for _, p := range matched {
			assert.Equal(t, c, p.Category)
		}
		union = append(union, matched...)
	}

	assert.ElementsMatch(t, all, union)
}

func TestByCategoryPreservesOrder(t *testing.T) {
	store := proverbs.MustNewStore([]model.Proverb{
		{ID: "a", Category: model.CategoryHope, Text: "first"},
		{ID: "b", Category: model.CategoryPatience, Text: "second"},
		{ID: "c", Category: model.CategoryHope, Text: "third"},
	})

	got := store.ByCategory(model.CategoryHope)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestByCategoryNoMatch(t *testing.T) {
	store := proverbs.MustNewStore([]model.Proverb{
		{ID: "a", Category: model.CategoryHope, Text: "only"},
	})

	got := store.ByCategory(model.CategoryGratitude)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAllReturnsCopy(t *testing.T) {
	store := proverbs.Default()
	first := store.All()
	first[0].Text = "changed"

	assert.NotEqual(t, "changed", store.All()[0].Text)
}

func TestRandomUsesInjectedSource(t *testing.T) {
	rnd := &fixedRand{}
	store := proverbs.Default(proverbs.WithRand(rnd))
	all := store.All()

	for i := range all {
		rnd.next = i
		assert.Equal(t, all[i], store.Random())
	}
}

func TestRandomCoversEveryEntry(t *testing.T) {
	store := proverbs.Default()
	counts := make(map[string]int)

	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[store.Random().ID]++
	}

	expected := float64(draws) / float64(store.Len())
	for _, p := range store.All() {
		n := counts[p.ID]
		assert.Greater(t, n, 0, "proverb %s never drawn", p.ID)
		assert.InDelta(t, expected, float64(n), expected*0.35, "proverb %s drawn %d times", p.ID, n)
	}
}

func TestNewStoreRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		entries []model.Proverb
	}{
		{name: "empty", entries: nil},
		{name: "blank text", entries: []model.Proverb{{ID: "a", Category: model.CategoryHope}}},
		{name: "unknown category", entries: []model.Proverb{{ID: "a", Category: "Joy", Text: "x"}}},
		{name: "missing id", entries: []model.Proverb{{Category: model.CategoryHope, Text: "x"}}},
		{name: "duplicate id", entries: []model.Proverb{
			{ID: "a", Category: model.CategoryHope, Text: "x"},
			{ID: "a", Category: model.CategoryHope, Text: "y"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := proverbs.NewStore(tt.entries)
			assert.Error(t, err)
		})
	}
}

func TestMustNewStorePanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { proverbs.MustNewStore(nil) })
}

func TestDefaultStoreKeepsStableIDs(t *testing.T) {
	all := proverbs.Default().All()
	require.Len(t, all, 10)

	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "Patience is the key to relief.", all[0].Text)
	assert.Equal(t, "p6", all[5].ID)
	assert.Equal(t, model.CategoryTawakkul, all[5].Category)
	assert.Equal(t, "Tie your camel and trust in Allah.", all[5].Text)
	assert.Equal(t, "p10", all[9].ID)
}

func TestRandomInCategoryUsesInjectedSource(t *testing.T) {
	rnd := &fixedRand{}
	store := proverbs.Default(proverbs.WithRand(rnd))
	hope := store.ByCategory(model.CategoryHope)
	require.Len(t, hope, 2)

	for i := range hope {
		rnd.next = i
		got, ok := store.RandomInCategory(model.CategoryHope)
		require.True(t, ok)
		assert.Equal(t, hope[i], got)
	}
}

func TestRandomInCategoryNoMatch(t *testing.T) {
	store := proverbs.MustNewStore([]model.Proverb{
		{ID: "a", Category: model.CategoryHope, Text: "only"},
	})

	_, ok := store.RandomInCategory(model.CategoryPatience)
	assert.False(t, ok)
}
