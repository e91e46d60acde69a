// Package memory holds the ephemeral ("base") vector store living in process memory.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/cleitonmarx/marvins-market/internal/common"
	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

type entry struct {
	seq      int
	metadata map[string]string
	text     string
	vector   []float64
}

type collection struct {
	nextSeq int
	entries map[uuid.UUID]entry
}

// CollectionStore implements domain.VectorStore in memory using cosine distance.
type CollectionStore struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

// NewCollectionStore creates an empty CollectionStore.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{collections: map[string]*collection{}}
}

// Query returns the n entries nearest to vector. Ties keep insertion order.
func (s *CollectionStore) Query(_ context.Context, name string, vector []float64, n int) (domain.SearchResult, error) {
	if n <= 0 {
		return domain.SearchResult{}, domain.NewValidationErr("n must be greater than 0")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok || len(c.entries) == 0 {
		return domain.SearchResult{}, domain.NewCollectionNotFoundErr(name)
	}

	type hit struct {
		entry
		distance float64
	}
	hits := make([]hit, 0, len(c.entries))
	for _, e := range c.entries {
		hits = append(hits, hit{entry: e, distance: common.CosineDistance(vector, e.vector)})
	}
	slices.SortFunc(hits, func(a, b hit) int {
		if d := cmp.Compare(a.distance, b.distance); d != 0 {
			return d
		}
		return cmp.Compare(a.seq, b.seq)
	})

	var res domain.SearchResult
	for _, h := range hits[:min(n, len(hits))] {
		res.Append(maps.Clone(h.metadata), h.distance, h.text)
	}
	return res, nil
}

// Add inserts docs as new entries. It fails without writing anything if a
// document is already in the collection.
func (s *CollectionStore) Add(_ context.Context, name string, docs []domain.EmbeddedDocument) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(name)
	seen := make(map[uuid.UUID]struct{}, len(docs))
	for _, d := range docs {
		_, exists := c.entries[d.ID]
		_, dup := seen[d.ID]
		if exists || dup {
			return 0, domain.NewValidationErr(fmt.Sprintf("document %s (%s) already exists in collection %q", d.ID, d.URL, name))
		}
		seen[d.ID] = struct{}{}
	}

	for _, d := range docs {
		c.put(d)
	}
	return len(docs), nil
}

// Upsert inserts docs, replacing the entries with the same ID in place.
func (s *CollectionStore) Upsert(_ context.Context, name string, docs []domain.EmbeddedDocument) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(name)
	for _, d := range docs {
		c.put(d)
	}
	return len(docs), nil
}

// Replace swaps the entries of the collection for docs. The collection is left
// untouched when docs holds the same document twice.
func (s *CollectionStore) Replace(_ context.Context, name string, docs []domain.EmbeddedDocument) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &collection{entries: make(map[uuid.UUID]entry, len(docs))}
	for _, d := range docs {
		if _, dup := c.entries[d.ID]; dup {
			return 0, domain.NewValidationErr(fmt.Sprintf("document %s (%s) appears twice", d.ID, d.URL))
		}
		c.put(d)
	}
	s.collections[name] = c
	return len(docs), nil
}

// ResetCollection removes every entry of the collection.
func (s *CollectionStore) ResetCollection(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections[name] = &collection{entries: map[uuid.UUID]entry{}}
	return nil
}

// Count returns the number of entries in the collection.
func (s *CollectionStore) Count(_ context.Context, name string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return 0, nil
	}
	return len(c.entries), nil
}

// collection returns the named collection, creating it if needed. Callers hold the write lock.
func (s *CollectionStore) collection(name string) *collection {
	c, ok := s.collections[name]
	if !ok {
		c = &collection{entries: map[uuid.UUID]entry{}}
		s.collections[name] = c
	}
	return c
}

func (c *collection) put(d domain.EmbeddedDocument) {
	seq := c.nextSeq
	if prev, ok := c.entries[d.ID]; ok {
		seq = prev.seq
	} else {
		c.nextSeq++
	}
	c.entries[d.ID] = entry{
		seq:      seq,
		metadata: d.Metadata(),
		text:     d.Text,
		vector:   slices.Clone(d.Vector),
	}
}

// InitCollectionStore registers the in-memory CollectionStore as the base vector store.
type InitCollectionStore struct{}

// Initialize registers the base vector store.
func (InitCollectionStore) Initialize(ctx context.Context) (context.Context, error) {
	depend.RegisterNamed[domain.VectorStore](NewCollectionStore(), domain.StoreMode_Base.DependencyName())
	return ctx, nil
}
