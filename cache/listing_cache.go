package listing_cache

import (
	"sync"
	"time"

	"github.com/Gothsec/centro-digital/models"
)

const TTL = 5 * time.Minute

// ── Full listing cache ───────────────────────────────────────────────────────
// Stores the complete business collection served to the public directory.
// Every business mutation must call Invalidate so the next read refetches.

type listingEntry struct {
	businesses []models.Business
	fetchedAt  time.Time
}

var (
	listingMu    sync.RWMutex
	listingCache *listingEntry
)

func GetListing() ([]models.Business, bool) {
	listingMu.RLock()
	defer listingMu.RUnlock()
	if listingCache != nil && time.Since(listingCache.fetchedAt) < TTL {
		return listingCache.businesses, true
	}
	return nil, false
}

func SetListing(businesses []models.Business) {
	listingMu.Lock()
	defer listingMu.Unlock()
	listingCache = &listingEntry{businesses: businesses, fetchedAt: time.Now()}
}

// ── Category counts cache ────────────────────────────────────────────────────

type categoriesEntry struct {
	categories []models.CategoryWithCount
	fetchedAt  time.Time
}

var (
	catMu    sync.RWMutex
	catCache *categoriesEntry
)

func GetCategories() ([]models.CategoryWithCount, bool) {
	catMu.RLock()
	defer catMu.RUnlock()
	if catCache != nil && time.Since(catCache.fetchedAt) < TTL {
		return catCache.categories, true
	}
	return nil, false
}

func SetCategories(categories []models.CategoryWithCount) {
	catMu.Lock()
	defer catMu.Unlock()
	catCache = &categoriesEntry{categories: categories, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any business create/update/delete) ────────

func Invalidate() {
	listingMu.Lock()
	listingCache = nil
	listingMu.Unlock()

	catMu.Lock()
	catCache = nil
	catMu.Unlock()
}
