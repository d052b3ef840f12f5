package business_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/Gothsec/centro-digital/listing"
	"github.com/Gothsec/centro-digital/models"
	"github.com/gin-gonic/gin"
)

// GetBusinesses godoc
// @Summary List businesses
// @Description Public directory listing: active businesses filtered by search term, category and favorites, windowed by page
// @Tags Directory - Businesses
// @Produce json
// @Param search query string false "Name search term"
// @Param category query string false "Category name (empty = all)"
// @Param favorites query bool false "Only favorited businesses"
// @Param page query int false "Page window" default(1)
// @Param limit query int false "Window size" default(8)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/businesses [get]
func GetBusinesses(c *gin.Context) {
	// Step 1: Parse and validate filter params
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = listing.DefaultPageSize
	}

	favoritesOnly := c.Query("favorites") == "true"

	// Step 2: Load the full collection (cache or one-shot fetch)
	records, err := loadListing(c.Request.Context())
	if err != nil {
		log.Printf("[directory.businesses] fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch businesses"))
		return
	}

	// Step 3: Derive the visible window. The public directory only ever
	// shows active businesses.
	filters := listing.Filters{
		Search:        c.Query("search"),
		Category:      c.Query("category"),
		Status:        listing.StatusActive,
		FavoritesOnly: favoritesOnly,
		Page:          page,
		PageSize:      limit,
	}
	result := listing.Apply(records, filters, favorites.Set())

	// Step 4: Prepare pagination meta
	totalPages := int(math.Ceil(float64(result.Total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      result.Total,
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Businesses fetched successfully", gin.H{
		"businesses": result.Visible,
		"has_more":   result.HasMore(),
	}, meta))
}
