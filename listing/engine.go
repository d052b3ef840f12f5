// Package listing implements the directory's listing subsystem: the raw
// business collection fetched once from its source, the pure
// filter-and-paginate engine applied over it, and the persisted favorite set.
package listing

import (
	"strings"

	"github.com/Gothsec/centro-digital/models"
)

// DefaultPageSize is the number of businesses revealed per "load more" step.
const DefaultPageSize = 8

// Status selects how the active flag narrows the listing.
type Status int

const (
	StatusAll Status = iota
	StatusActive
	StatusInactive
)

// Filters is the full filter state applied by the engine. The zero value
// matches everything on the first page window.
//
// Category uses the empty string as the "all categories" sentinel; real
// category labels are never empty, so the sentinel cannot collide with data.
type Filters struct {
	Search        string
	Category      string
	Status        Status
	FavoritesOnly bool
	Page          int // 1-based window, grows by one per load-more
	PageSize      int
}

func (f Filters) page() int {
	if f.Page < 1 {
		return 1
	}
	return f.Page
}

func (f Filters) pageSize() int {
	if f.PageSize < 1 {
		return DefaultPageSize
	}
	return f.PageSize
}

// Result is the derived output of one engine run.
type Result struct {
	Visible []models.Business // windowed slice, source order preserved
	Total   int               // matching businesses before windowing
}

// HasMore reports whether another load-more step would reveal more records.
func (r Result) HasMore() bool {
	return len(r.Visible) < r.Total
}

// Apply derives the visible slice of businesses from the raw collection, the
// filter state and the favorite set. It is a pure function: identical inputs
// always produce identical ordered output.
func Apply(records []models.Business, f Filters, favorites FavoriteSet) Result {
	matched := Match(records, f, favorites)

	limit := f.page() * f.pageSize()
	if limit > len(matched) {
		limit = len(matched)
	}

	return Result{Visible: matched[:limit], Total: len(matched)}
}

// Match runs the filter stages in their fixed order (search, category,
// status, favorites) without windowing. The search term is matched as a
// literal case-insensitive substring of the business name, never as a
// pattern. Category comparison is case-insensitive equality.
func Match(records []models.Business, f Filters, favorites FavoriteSet) []models.Business {
	term := strings.ToLower(f.Search)

	matched := make([]models.Business, 0, len(records))
	for _, b := range records {
		if term != "" && !strings.Contains(strings.ToLower(b.Name), term) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(b.Category, f.Category) {
			continue
		}
		if f.Status == StatusActive && !b.Active {
			continue
		}
		if f.Status == StatusInactive && b.Active {
			continue
		}
		if f.FavoritesOnly && !favorites.Has(b.ID.String()) {
			continue
		}
		matched = append(matched, b)
	}
	return matched
}
