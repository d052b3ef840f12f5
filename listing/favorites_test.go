package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFavoritesStore records writes and can fail on demand.
type fakeFavoritesStore struct {
	ids      []string
	readErr  error
	writeErr error
	writes   int
}

func (s *fakeFavoritesStore) Read(ctx context.Context) ([]string, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.ids, nil
}

func (s *fakeFavoritesStore) Write(ctx context.Context, ids []string) error {
	s.writes++
	if s.writeErr != nil {
		return s.writeErr
	}
	s.ids = ids
	return nil
}

func TestFavoritesLoad(t *testing.T) {
	store := &fakeFavoritesStore{ids: []string{"a", "b", ""}}
	favs := NewFavorites(store)
	favs.Load(context.Background())

	assert.True(t, favs.IsFavorite("a"))
	assert.True(t, favs.IsFavorite("b"))
	assert.False(t, favs.IsFavorite(""))
	assert.Equal(t, []string{"a", "b"}, favs.List())
}

func TestFavoritesLoadUnreadableStoreStartsEmpty(t *testing.T) {
	store := &fakeFavoritesStore{readErr: errors.New("corrupt payload")}
	favs := NewFavorites(store)
	favs.Load(context.Background())

	assert.Empty(t, favs.List())
}

func TestFavoritesToggle(t *testing.T) {
	store := &fakeFavoritesStore{}
	favs := NewFavorites(store)
	ctx := context.Background()

	assert.True(t, favs.Toggle(ctx, "biz-1"))
	assert.True(t, favs.IsFavorite("biz-1"))
	assert.Equal(t, []string{"biz-1"}, store.ids)

	// Second toggle restores the original set
	assert.False(t, favs.Toggle(ctx, "biz-1"))
	assert.False(t, favs.IsFavorite("biz-1"))
	assert.Empty(t, store.ids)
	assert.Equal(t, 2, store.writes)
}

func TestFavoritesTogglePersistsWholeSet(t *testing.T) {
	store := &fakeFavoritesStore{}
	favs := NewFavorites(store)
	ctx := context.Background()

	favs.Toggle(ctx, "b")
	favs.Toggle(ctx, "a")
	favs.Toggle(ctx, "c")

	assert.Equal(t, []string{"a", "b", "c"}, store.ids)
}

func TestFavoritesToggleSurvivesWriteFailure(t *testing.T) {
	store := &fakeFavoritesStore{writeErr: errors.New("disk full")}
	favs := NewFavorites(store)

	member := favs.Toggle(context.Background(), "biz-1")

	// The in-memory set stays authoritative even when persistence fails
	assert.True(t, member)
	assert.True(t, favs.IsFavorite("biz-1"))
	assert.Equal(t, 1, store.writes)
}

func TestFavoritesSetIsSnapshot(t *testing.T) {
	favs := NewFavorites(&fakeFavoritesStore{})
	ctx := context.Background()
	favs.Toggle(ctx, "biz-1")

	snapshot := favs.Set()
	require.True(t, snapshot.Has("biz-1"))

	favs.Toggle(ctx, "biz-1")
	assert.True(t, snapshot.Has("biz-1"), "snapshot must not observe later toggles")
	assert.False(t, favs.IsFavorite("biz-1"))
}

func TestFileFavoritesStoreMissingFile(t *testing.T) {
	store := NewFileFavoritesStore(t.TempDir())

	ids, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFileFavoritesStoreRoundTrip(t *testing.T) {
	store := NewFileFavoritesStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, []string{"a", "b"}))

	ids, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}
