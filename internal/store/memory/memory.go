// Package memory holds in-memory store implementations used by tests. They
// mirror the Postgres semantics closely enough for handler-level tests:
// sentinel errors, embedded child collections, and the quote item replacement
// behavior.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/itlaf/fotostudio/internal/models"
)

// clock is swappable in tests.
var clock = time.Now

type base struct {
	mu sync.RWMutex
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func cloneClient(c models.Client) models.Client {
	c.Sessions = nil
	return c
}

func cloneSession(s models.Session) models.Session {
	s.Client = nil
	s.Photos = nil
	return s
}

func cloneQuote(q models.Quote) models.Quote {
	q.Client = nil
	q.Items = nil
	return q
}
