// Package proverbs holds the fixed collection of short proverbs shown next to
// the daily hadith.
package proverbs

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/model"
)

// Rand picks an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand draws from the process-wide math/rand/v2 source.
var DefaultRand Rand = globalRand{}

// Store is an immutable, ordered list of proverbs.
type Store struct {
	proverbs []model.Proverb
	rnd      Rand
}

// Option configures a Store.
type Option func(*Store)

// WithRand replaces the random source, mostly for tests.
func WithRand(r Rand) Option {
	return func(s *Store) {
		s.rnd = r
	}
}

// NewStore validates entries and copies them into a new Store.
// An empty list or an entry without text or with an unknown category is rejected.
func NewStore(entries []model.Proverb, opts ...Option) (*Store, error) {
	if len(entries) == 0 {
		return nil, errors.New("proverb store is empty")
	}

	seen := make(map[string]struct{}, len(entries))
	for i, p := range entries {
		if p.ID == "" {
			return nil, fmt.Errorf("proverb %d: empty id", i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("proverb %s: duplicate id", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Text == "" {
			return nil, fmt.Errorf("proverb %s: empty text", p.ID)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("proverb %s: unknown category %q", p.ID, p.Category)
		}
	}

	s := &Store{
		proverbs: append([]model.Proverb(nil), entries...),
		rnd:      DefaultRand,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MustNewStore is NewStore for the built-in list; it panics on invalid input.
func MustNewStore(entries []model.Proverb, opts ...Option) *Store {
	s, err := NewStore(entries, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns a Store over the built-in proverb list.
func Default(opts ...Option) *Store {
	return MustNewStore(builtin, opts...)
}

// All returns every proverb in insertion order. The result is a copy.
func (s *Store) All() []model.Proverb {
	return append([]model.Proverb(nil), s.proverbs...)
}

// Random returns one proverb chosen uniformly.
func (s *Store) Random() model.Proverb {
	return s.proverbs[s.rnd.IntN(len(s.proverbs))]
}

// ByCategory returns the proverbs filed under category, in insertion order.
// It returns an empty, non-nil slice when nothing matches.
func (s *Store) ByCategory(category model.Category) []model.Proverb {
	out := make([]model.Proverb, 0)
	for _, p := range s.proverbs {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// RandomInCategory returns one proverb chosen uniformly from category.
// ok is false when the category has no proverbs.
func (s *Store) RandomInCategory(category model.Category) (p model.Proverb, ok bool) {
	matched := s.ByCategory(category)
	if len(matched) == 0 {
		return model.Proverb{}, false
	}
	return matched[s.rnd.IntN(len(matched))], true
}

// Len reports how many proverbs the store holds.
func (s *Store) Len() int {
	return len(s.proverbs)
}
