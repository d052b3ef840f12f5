package listing

import (
	"context"
	"testing"

	"github.com/Gothsec/centro-digital/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T, records []models.Business) *View {
	t.Helper()
	store := NewStore(sourceFunc(func(ctx context.Context) ([]models.Business, error) {
		return records, nil
	}))
	require.NoError(t, store.Refresh(context.Background()))
	favorites := NewFavorites(&fakeFavoritesStore{})
	return NewView(store, favorites)
}

func strPtr(s string) *string { return &s }

func TestViewSetFilterPartialUpdate(t *testing.T) {
	view := newTestView(t, nil)

	view.SetFilter(FilterPatch{Search: strPtr("café")})
	view.SetFilter(FilterPatch{Category: strPtr("Cafés")})

	filters := view.Filters()
	assert.Equal(t, "café", filters.Search, "unset patch fields keep their value")
	assert.Equal(t, "Cafés", filters.Category)
	assert.Equal(t, 1, filters.Page)
}

func TestViewFilterChangeKeepsWindow(t *testing.T) {
	view := newTestView(t, makeBusinesses(30))

	view.LoadMore()
	view.LoadMore()
	require.Equal(t, 3, view.Filters().Page)

	view.SetFilter(FilterPatch{Search: strPtr("negocio")})
	assert.Equal(t, 3, view.Filters().Page, "filter changes keep the grown window")
	assert.Len(t, view.VisibleBusinesses(), 24)
}

func TestViewLoadMore(t *testing.T) {
	view := newTestView(t, makeBusinesses(20))

	assert.Len(t, view.VisibleBusinesses(), 8)
	assert.True(t, view.HasMore())

	view.LoadMore()
	assert.Len(t, view.VisibleBusinesses(), 16)

	view.LoadMore()
	assert.Len(t, view.VisibleBusinesses(), 20)
	assert.False(t, view.HasMore())

	// Exhausted: further calls neither grow the window nor fail
	view.LoadMore()
	assert.Equal(t, 3, view.Filters().Page)
	assert.Len(t, view.VisibleBusinesses(), 20)
}

func TestViewToggleFavoriteFlow(t *testing.T) {
	records := makeBusinesses(3)
	view := newTestView(t, records)
	ctx := context.Background()
	id := records[1].ID.String()

	favoritesOnly := true
	view.SetFilter(FilterPatch{FavoritesOnly: &favoritesOnly})
	assert.Empty(t, view.VisibleBusinesses())

	assert.True(t, view.ToggleFavorite(ctx, id))
	assert.True(t, view.IsFavorite(id))

	visible := view.VisibleBusinesses()
	require.Len(t, visible, 1)
	assert.Equal(t, records[1].ID, visible[0].ID)

	assert.False(t, view.ToggleFavorite(ctx, id))
	assert.Empty(t, view.VisibleBusinesses())
}

func TestViewStatusFilter(t *testing.T) {
	records := []models.Business{
		makeBusiness("Abierto", "Retail", true),
		makeBusiness("Cerrado", "Retail", false),
	}
	view := newTestView(t, records)

	status := StatusActive
	view.SetFilter(FilterPatch{Status: &status})
	visible := view.VisibleBusinesses()
	require.Len(t, visible, 1)
	assert.Equal(t, "Abierto", visible[0].Name)
}
