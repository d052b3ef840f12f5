package business_controller

import (
	"context"

	listing_cache "github.com/Gothsec/centro-digital/cache"
	"github.com/Gothsec/centro-digital/listing"
	"github.com/Gothsec/centro-digital/models"
	"github.com/Gothsec/centro-digital/services"
)

var (
	listingStore      *listing.Store
	cloudinaryService *services.CloudinaryService
)

// InitListing wires the shared listing store built in main
func InitListing(store *listing.Store) {
	listingStore = store
}

// InitCloudinary wires the shared Cloudinary service
func InitCloudinary(svc *services.CloudinaryService) {
	cloudinaryService = svc
}

// loadListing returns the full collection (all statuses) for the dashboard,
// from the in-process cache when fresh.
func loadListing(ctx context.Context) ([]models.Business, error) {
	if cached, ok := listing_cache.GetListing(); ok {
		return cached, nil
	}

	if err := listingStore.Refresh(ctx); err != nil {
		return nil, err
	}
	records, _, err := listingStore.Snapshot()
	if err != nil {
		return nil, err
	}

	listing_cache.SetListing(records)
	return records, nil
}

// parseStatus maps the dashboard status filter values to engine statuses
func parseStatus(value string) listing.Status {
	switch value {
	case "active":
		return listing.StatusActive
	case "inactive":
		return listing.StatusInactive
	default:
		return listing.StatusAll
	}
}
