package wisdom_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/apperr"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/hadith"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/model"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/proverbs"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/wisdom"
)

type fakeHadiths struct {
	hadith *model.Hadith
	err    error
	pinned []hadith.Collection
}

func (f *fakeHadiths) FetchRandom(ctx context.Context) (*model.Hadith, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.hadith, nil
}

func (f *fakeHadiths) FetchFromCollection(ctx context.Context, c hadith.Collection) (*model.Hadith, error) {
	f.pinned = append(f.pinned, c)
	return f.FetchRandom(ctx)
}

type fakeReflector struct {
	got model.Hadith
	out model.Reflections
	err error
}

func (f *fakeReflector) Generate(ctx context.Context, h model.Hadith) (model.Reflections, error) {
	f.got = h
	return f.out, f.err
}

type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

var sample = &model.Hadith{ID: "42", Collection: "Sahih al-Bukhari", TextEnglish: "Text."}

func TestProverbDelegation(t *testing.T) {
	store := proverbs.Default(proverbs.WithRand(firstRand{}))
	f := wisdom.New(&fakeHadiths{hadith: sample}, store, nil)

	assert.Equal(t, store.All(), f.AllProverbs())
	assert.Equal(t, store.All()[0], f.RandomProverb())
	assert.Equal(t, store.ByCategory(model.CategoryHope), f.ProverbsByCategory(model.CategoryHope))
}

func TestHadithDelegation(t *testing.T) {
	src := &fakeHadiths{hadith: sample}
	f := wisdom.New(src, proverbs.Default(), nil)

	h, err := f.RandomHadith(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sample, h)

	_, err = f.HadithFrom(context.Background(), hadith.CollectionMuslim)
	require.NoError(t, err)
	assert.Equal(t, []hadith.Collection{hadith.CollectionMuslim}, src.pinned)
}

func TestDailyJoinsBothResults(t *testing.T) {
	store := proverbs.Default(proverbs.WithRand(firstRand{}))
	f := wisdom.New(&fakeHadiths{hadith: sample}, store, nil)

	w, err := f.Daily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, *sample, w.Hadith)
	assert.Equal(t, store.All()[0], w.Proverb)
}

func TestDailyFailsWhenHadithFails(t *testing.T) {
	upstream := apperr.NewStatusError("hadith", 500, nil)
	f := wisdom.New(&fakeHadiths{err: upstream}, proverbs.Default(), nil)

	w, err := f.Daily(context.Background())
	require.Error(t, err)
	assert.Nil(t, w)
	assert.True(t, apperr.IsGateway(err))
	assert.Equal(t, 500, apperr.StatusCode(err))
}

func TestReflectDelegates(t *testing.T) {
	r := &fakeReflector{out: model.Reflections{"Be patient."}}
	f := wisdom.New(&fakeHadiths{}, proverbs.Default(), r)

	got, err := f.Reflect(context.Background(), *sample)
	require.NoError(t, err)
	assert.Equal(t, model.Reflections{"Be patient."}, got)
	assert.Equal(t, *sample, r.got)
}

func TestReflectPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	f := wisdom.New(&fakeHadiths{}, proverbs.Default(), &fakeReflector{err: boom})

	_, err := f.Reflect(context.Background(), *sample)
	assert.ErrorIs(t, err, boom)
}

func TestReflectWithoutReflectorIsConfigError(t *testing.T) {
	f := wisdom.New(&fakeHadiths{}, proverbs.Default(), nil)

	got, err := f.Reflect(context.Background(), *sample)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, apperr.IsConfig(err))
}

func TestRandomProverbInUsesStore(t *testing.T) {
	store := proverbs.Default(proverbs.WithRand(firstRand{}))
	f := wisdom.New(&fakeHadiths{}, store, nil)

	p, ok := f.RandomProverbIn(model.CategoryDiscipline)
	require.True(t, ok)
	assert.Equal(t, "p5", p.ID)
}
