package listing

import (
	"context"
	"log"
	"sort"
	"sync"
)

// FavoriteSet is a snapshot of the favorite business identifiers.
type FavoriteSet map[string]struct{}

// Has reports membership. A nil set contains nothing.
func (s FavoriteSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// FavoritesStore is the injected persistence port for the favorite set.
// Implementations are best-effort: favorites are a convenience feature, not
// transactional data.
type FavoritesStore interface {
	Read(ctx context.Context) ([]string, error)
	Write(ctx context.Context, ids []string) error
}

// Favorites tracks the favorite set across the session and, through its
// store, across restarts. The in-memory set stays authoritative: store
// failures never corrupt it and are never surfaced to callers.
type Favorites struct {
	mu    sync.RWMutex
	store FavoritesStore
	ids   FavoriteSet
}

func NewFavorites(store FavoritesStore) *Favorites {
	return &Favorites{
		store: store,
		ids:   make(FavoriteSet),
	}
}

// Load replaces the in-memory set with the persisted one. An absent or
// unreadable store yields an empty set; Load never fails.
func (f *Favorites) Load(ctx context.Context) {
	ids, err := f.store.Read(ctx)
	if err != nil {
		log.Printf("[favorites] read failed, starting empty: %v", err)
		ids = nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = make(FavoriteSet, len(ids))
	for _, id := range ids {
		if id != "" {
			f.ids[id] = struct{}{}
		}
	}
}

// Toggle flips membership of id and persists the whole set before returning,
// so a crash loses at most this one toggle. It returns the new membership
// state. Toggling the same id twice restores the original set.
func (f *Favorites) Toggle(ctx context.Context, id string) bool {
	f.mu.Lock()
	if _, ok := f.ids[id]; ok {
		delete(f.ids, id)
	} else {
		f.ids[id] = struct{}{}
	}
	_, member := f.ids[id]
	ids := f.sortedLocked()
	f.mu.Unlock()

	if err := f.store.Write(ctx, ids); err != nil {
		// Swallowed on purpose: the in-memory set stays authoritative.
		log.Printf("[favorites] write failed: %v", err)
	}
	return member
}

// IsFavorite is a pure membership query.
func (f *Favorites) IsFavorite(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.ids.Has(id)
}

// Set returns a snapshot copy safe to hand to the engine.
func (f *Favorites) Set() FavoriteSet {
	f.mu.RLock()
	defer f.mu.RUnlock()
	snapshot := make(FavoriteSet, len(f.ids))
	for id := range f.ids {
		snapshot[id] = struct{}{}
	}
	return snapshot
}

// List returns the favorite identifiers in stable order.
func (f *Favorites) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.sortedLocked()
}

func (f *Favorites) sortedLocked() []string {
	ids := make([]string, 0, len(f.ids))
	for id := range f.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
