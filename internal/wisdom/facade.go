// Package wisdom is the single entry point used by the HTTP API and the CLI.
package wisdom

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/apperr"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/hadith"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/model"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/reflection"
)

// HadithSource fetches hadith. *hadith.Gateway satisfies it.
type HadithSource interface {
	FetchRandom(ctx context.Context) (*model.Hadith, error)
	FetchFromCollection(ctx context.Context, c hadith.Collection) (*model.Hadith, error)
}

// ProverbSource serves proverbs. *proverbs.Store satisfies it.
type ProverbSource interface {
	All() []model.Proverb
	Random() model.Proverb
	ByCategory(category model.Category) []model.Proverb
	RandomInCategory(category model.Category) (model.Proverb, bool)
}

// Reflector generates reflections. *reflection.Generator satisfies it.
type Reflector interface {
	Generate(ctx context.Context, h model.Hadith) (model.Reflections, error)
}

// Facade combines the proverb store, the hadith gateway and the optional
// reflection generator. It holds no state of its own.
type Facade struct {
	hadiths   HadithSource
	proverbs  ProverbSource
	reflector Reflector
}

// New creates a Facade. reflector may be nil, in which case Reflect reports
// a configuration error.
func New(hadiths HadithSource, proverbs ProverbSource, reflector Reflector) *Facade {
	return &Facade{
		hadiths:   hadiths,
		proverbs:  proverbs,
		reflector: reflector,
	}
}

// RandomHadith fetches a hadith from a randomly chosen collection.
func (f *Facade) RandomHadith(ctx context.Context) (*model.Hadith, error) {
	return f.hadiths.FetchRandom(ctx)
}

// HadithFrom fetches a hadith pinned to collection c.
func (f *Facade) HadithFrom(ctx context.Context, c hadith.Collection) (*model.Hadith, error) {
	return f.hadiths.FetchFromCollection(ctx, c)
}

// RandomProverb returns one proverb chosen uniformly.
func (f *Facade) RandomProverb() model.Proverb {
	return f.proverbs.Random()
}

// ProverbsByCategory returns the proverbs in category, possibly none.
func (f *Facade) ProverbsByCategory(category model.Category) []model.Proverb {
	return f.proverbs.ByCategory(category)
}

// RandomProverbIn returns one proverb chosen uniformly from category. ok is
// false when the category is empty.
func (f *Facade) RandomProverbIn(category model.Category) (model.Proverb, bool) {
	return f.proverbs.RandomInCategory(category)
}

// AllProverbs returns every proverb in order.
func (f *Facade) AllProverbs() []model.Proverb {
	return f.proverbs.All()
}

// Daily fetches a hadith and picks a proverb concurrently. If either task
// fails the whole call fails and the other result is discarded.
func (f *Facade) Daily(ctx context.Context) (*model.Wisdom, error) {
	var (
		h *model.Hadith
		p model.Proverb
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := f.hadiths.FetchRandom(gctx)
		if err != nil {
			return err
		}
		h = fetched
		return nil
	})
	g.Go(func() error {
		p = f.proverbs.Random()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("daily wisdom: %w", err)
	}

	return &model.Wisdom{Hadith: *h, Proverb: p}, nil
}

// Reflect generates reflections for h.
func (f *Facade) Reflect(ctx context.Context, h model.Hadith) (model.Reflections, error) {
	if f.reflector == nil {
		return nil, apperr.NewConfigError(reflection.APIKeyVariable)
	}
	return f.reflector.Generate(ctx, h)
}
