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
// @Summary Get businesses for the dashboard
// @Description Retrieve businesses of every status with search, category and status filters plus offset pagination
// @Tags Dashboard - Businesses
// @Produce json
// @Param search query string false "Name search term"
// @Param category query string false "Category name (empty = all)"
// @Param status query string false "Status filter" Enums(all, active, inactive) default(all)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/businesses [get]
func GetBusinesses(c *gin.Context) {
	// Step 1: Parse and validate pagination params
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	// Step 2: Load the full collection and narrow it with the engine. The
	// dashboard filters the same in-memory collection the directory serves;
	// no per-filter queries.
	records, err := loadListing(c.Request.Context())
	if err != nil {
		log.Printf("[dashboard.businesses] fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch businesses"))
		return
	}

	filters := listing.Filters{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   parseStatus(c.DefaultQuery("status", "all")),
	}
	matched := listing.Match(records, filters, nil)

	// Step 3: Offset pagination over the matched set
	total := len(matched)
	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Businesses fetched successfully", matched[offset:end], meta))
}
