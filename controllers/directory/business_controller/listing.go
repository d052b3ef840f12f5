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
	favorites         *listing.Favorites
	cloudinaryService *services.CloudinaryService
	geocodingService  *services.GeocodingService
)

// InitListing wires the shared listing store and favorites tracker built in main
func InitListing(store *listing.Store, favs *listing.Favorites) {
	listingStore = store
	favorites = favs
}

// InitCloudinary wires the shared Cloudinary service
func InitCloudinary(svc *services.CloudinaryService) {
	cloudinaryService = svc
}

// InitGeocoding wires the geocoding service
func InitGeocoding(svc *services.GeocodingService) {
	geocodingService = svc
}

// loadListing returns the full business collection: from the in-process
// cache when fresh, otherwise through one refresh of the listing store.
// A failed refresh is terminal for this request; there is no retry.
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
