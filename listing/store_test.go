package listing

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/Gothsec/centro-digital/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sourceFunc func(ctx context.Context) ([]models.Business, error)

func (f sourceFunc) ListAll(ctx context.Context) ([]models.Business, error) {
	return f(ctx)
}

func TestStoreRefresh(t *testing.T) {
	records := []models.Business{makeBusiness("Café Luna", "Cafés", true)}
	store := NewStore(sourceFunc(func(ctx context.Context) ([]models.Business, error) {
		return records, nil
	}))

	require.NoError(t, store.Refresh(context.Background()))

	held, loading, err := store.Snapshot()
	require.NoError(t, err)
	assert.False(t, loading)
	require.Len(t, held, 1)
	assert.Equal(t, "Café Luna", held[0].Name)
}

func TestStoreRefreshFailureKeepsPreviousRecords(t *testing.T) {
	var fail atomic.Bool
	store := NewStore(sourceFunc(func(ctx context.Context) ([]models.Business, error) {
		if fail.Load() {
			return nil, errors.New("connection refused")
		}
		return []models.Business{makeBusiness("Café Luna", "Cafés", true)}, nil
	}))
	ctx := context.Background()

	require.NoError(t, store.Refresh(ctx))
	fail.Store(true)

	err := store.Refresh(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch businesses")

	held, _, snapErr := store.Snapshot()
	assert.Len(t, held, 1, "a failed refresh must not clear loaded data")
	assert.Error(t, snapErr)
}

func TestStoreStaleRefreshDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	var calls atomic.Int32

	store := NewStore(sourceFunc(func(ctx context.Context) ([]models.Business, error) {
		if calls.Add(1) == 1 {
			close(firstStarted)
			<-releaseFirst
			return []models.Business{makeBusiness("Versión Vieja", "Cafés", true)}, nil
		}
		return []models.Business{makeBusiness("Versión Nueva", "Cafés", true)}, nil
	}))
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- store.Refresh(ctx) }()
	<-firstStarted

	// A second refresh issued while the first is in flight wins
	require.NoError(t, store.Refresh(ctx))

	close(releaseFirst)
	require.NoError(t, <-done)

	held := store.Records()
	require.Len(t, held, 1)
	assert.Equal(t, "Versión Nueva", held[0].Name)
}

func TestStoreRecordsEmptyBeforeFirstRefresh(t *testing.T) {
	store := NewStore(sourceFunc(func(ctx context.Context) ([]models.Business, error) {
		return nil, nil
	}))
	assert.Empty(t, store.Records())
}

func TestNormalize(t *testing.T) {
	valid := makeBusiness("Café Luna", "Cafés", true)
	valid.OpensAt = "08:00"
	valid.ClosesAt = "18:30"

	records := normalize([]models.Business{
		valid,
		{Name: "Sin ID", Category: "Retail"},
	})

	require.Len(t, records, 1)
	assert.Equal(t, "Café Luna", records[0].Name)
	assert.Equal(t, "8:00 AM - 6:30 PM", records[0].Hours)
}
