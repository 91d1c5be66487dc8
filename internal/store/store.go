// Package store holds the client-side mirror of both remote stores: a
// normalized mapping from entity kind to an ordered collection. It is the
// single source of truth for everything the UI renders. The store never
// performs network calls and never reaches back into the dispatcher; callers
// build new collections and replace them wholesale.
package store

import (
	"sync"

	"github.com/alexanderramin/northstar/internal/domain"
)

type Store struct {
	mu          sync.RWMutex
	collections map[domain.Kind][]domain.Entity
}

func New() *Store {
	return &Store{collections: make(map[domain.Kind][]domain.Entity)}
}

// Get returns the entity with the given id, resolving alias kinds onto their
// physical collection. Lookup is a scan; collections are small enough that
// this is a performance note, not a correctness one.
func (s *Store) Get(kind domain.Kind, id string) (domain.Entity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.collections[domain.ResolveKind(kind)] {
		if e.EntityID() == id {
			return e, true
		}
	}
	return nil, false
}

// List returns the collection for kind in insertion order. The returned slice
// is a copy; the entities themselves are shared and must be treated as
// read-only by callers (mutate via Clone + ReplaceCollection).
func (s *Store) List(kind domain.Kind) []domain.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src := s.collections[domain.ResolveKind(kind)]
	out := make([]domain.Entity, len(src))
	copy(out, src)
	return out
}

// ReplaceCollection swaps in a new collection for kind.
func (s *Store) ReplaceCollection(kind domain.Kind, entities []domain.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[domain.ResolveKind(kind)] = entities
}

// Snapshot returns a copy of every collection, for rendering and export.
func (s *Store) Snapshot() map[domain.Kind][]domain.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.Kind][]domain.Entity, len(s.collections))
	for kind, coll := range s.collections {
		cp := make([]domain.Entity, len(coll))
		copy(cp, coll)
		out[kind] = cp
	}
	return out
}
