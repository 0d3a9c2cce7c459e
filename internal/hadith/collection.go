package hadith

import (
	"fmt"
	"strings"
)

// Collection names one of the upstream hadith collections.
type Collection int

const (
	CollectionBukhari Collection = iota
	CollectionMuslim
)

var collections = []Collection{CollectionBukhari, CollectionMuslim}

// Collections lists every supported collection.
func Collections() []Collection {
	return append([]Collection(nil), collections...)
}

func (c Collection) String() string {
	switch c {
	case CollectionBukhari:
		return "bukhari"
	case CollectionMuslim:
		return "muslim"
	default:
		return fmt.Sprintf("collection(%d)", int(c))
	}
}

// DisplayName is the full title of the collection.
func (c Collection) DisplayName() string {
	switch c {
	case CollectionBukhari:
		return "Sahih al-Bukhari"
	case CollectionMuslim:
		return "Sahih Muslim"
	default:
		return c.String()
	}
}

// Path is the random-hadith endpoint for the collection, relative to the base URL.
func (c Collection) Path() string {
	return "/" + c.String() + "/"
}

// ParseCollection accepts the short name of a collection in any letter case.
func ParseCollection(s string) (Collection, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range collections {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown collection %q", s)
}

// Rand picks an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// PickCollection chooses a collection uniformly using r.
func PickCollection(r Rand) Collection {
	return collections[r.IntN(len(collections))]
}
