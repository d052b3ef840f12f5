package listing

import (
	"context"
	"fmt"
	"sync"

	"github.com/Gothsec/centro-digital/models"
	"github.com/Gothsec/centro-digital/utils"
	"github.com/google/uuid"
)

// Source provides the unfiltered, unpaginated business collection.
type Source interface {
	ListAll(ctx context.Context) ([]models.Business, error)
}

// Store holds the raw business collection and its load status. It fetches
// only when asked: once on startup and again after a mutation elsewhere
// invalidates the collection. A failed fetch is terminal for that refresh
// (no retry) and keeps the previously loaded records.
type Store struct {
	mu      sync.RWMutex
	source  Source
	records []models.Business
	loading bool
	err     error
	seq     uint64
}

func NewStore(source Source) *Store {
	return &Store{source: source}
}

// Refresh fetches the full collection and replaces the held records. Each
// call gets a sequence number; a fetch that finishes after a newer one has
// been issued is discarded, so out-of-order completions can never overwrite
// newer data.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	s.mu.Unlock()

	records, err := s.source.ListAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		// A newer refresh superseded this one; drop the result.
		return nil
	}
	s.loading = false
	if err != nil {
		s.err = fmt.Errorf("failed to fetch businesses: %w", err)
		return s.err
	}
	s.err = nil
	s.records = normalize(records)
	return nil
}

// Snapshot returns the held records together with the load status. The
// returned slice must not be mutated by callers.
func (s *Store) Snapshot() (records []models.Business, loading bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records, s.loading, s.err
}

// Records returns the held records, empty until the first successful Refresh.
func (s *Store) Records() []models.Business {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// normalize validates records at the source boundary so malformed rows never
// reach the filter engine: entries without an identifier are dropped and the
// derived hours string is filled in when the source did not compute it.
func normalize(records []models.Business) []models.Business {
	out := make([]models.Business, 0, len(records))
	for _, b := range records {
		if b.ID == uuid.Nil {
			continue
		}
		if b.Hours == "" {
			b.Hours = utils.FormatHours(b.OpensAt, b.ClosesAt)
		}
		out = append(out, b)
	}
	return out
}
