package listing

import (
	"context"
	"sync"

	"github.com/Gothsec/centro-digital/models"
)

// FilterPatch is a partial filter update; nil fields keep their current
// value. Changing a filter field does not reset the page window (matching
// the directory's observed load-more behavior).
type FilterPatch struct {
	Search        *string
	Category      *string
	Status        *Status
	FavoritesOnly *bool
}

// View combines the store, the favorite set and the filter state into the
// surface a hosting UI consumes. All methods are safe for concurrent use.
type View struct {
	store     *Store
	favorites *Favorites

	mu      sync.Mutex
	filters Filters
}

func NewView(store *Store, favorites *Favorites) *View {
	return &View{
		store:     store,
		favorites: favorites,
		filters:   Filters{Page: 1, PageSize: DefaultPageSize},
	}
}

// SetFilter applies a partial filter update.
func (v *View) SetFilter(p FilterPatch) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if p.Search != nil {
		v.filters.Search = *p.Search
	}
	if p.Category != nil {
		v.filters.Category = *p.Category
	}
	if p.Status != nil {
		v.filters.Status = *p.Status
	}
	if p.FavoritesOnly != nil {
		v.filters.FavoritesOnly = *p.FavoritesOnly
	}
}

// LoadMore grows the page window by one. Once every matching record is
// already visible it does nothing; calling it then is not an error.
func (v *View) LoadMore() {
	v.mu.Lock()
	defer v.mu.Unlock()
	res := Apply(v.store.Records(), v.filters, v.favorites.Set())
	if !res.HasMore() {
		return
	}
	v.filters.Page++
}

// VisibleBusinesses recomputes and returns the windowed slice for the
// current inputs.
func (v *View) VisibleBusinesses() []models.Business {
	return v.derive().Visible
}

// HasMore reports whether a load-more step would reveal more records.
func (v *View) HasMore() bool {
	return v.derive().HasMore()
}

// ToggleFavorite flips the favorite state of id and returns the new state.
func (v *View) ToggleFavorite(ctx context.Context, id string) bool {
	return v.favorites.Toggle(ctx, id)
}

// IsFavorite reports whether id is currently favorited.
func (v *View) IsFavorite(id string) bool {
	return v.favorites.IsFavorite(id)
}

// Filters returns a copy of the current filter state.
func (v *View) Filters() Filters {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters
}

func (v *View) derive() Result {
	v.mu.Lock()
	f := v.filters
	v.mu.Unlock()
	return Apply(v.store.Records(), f, v.favorites.Set())
}
