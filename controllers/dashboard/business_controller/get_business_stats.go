package business_controller

import (
	"log"
	"net/http"

	"github.com/Gothsec/centro-digital/models"
	"github.com/gin-gonic/gin"
)

// GetBusinessStats godoc
// @Summary Get business statistics
// @Description Totals, active/inactive split and per-category counts over the full collection
// @Tags Dashboard - Businesses
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/businesses/stats [get]
func GetBusinessStats(c *gin.Context) {
	records, err := loadListing(c.Request.Context())
	if err != nil {
		log.Printf("[dashboard.stats] fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch businesses"))
		return
	}

	stats := models.BusinessStatsResponse{
		TotalBusinesses: len(records),
		ByCategory:      make(map[string]int),
	}
	for _, b := range records {
		if b.Active {
			stats.ActiveBusinesses++
		} else {
			stats.InactiveBusinesses++
		}
		if b.Category != "" {
			stats.ByCategory[b.Category]++
		}
	}
	if stats.TotalBusinesses > 0 {
		stats.PercentageActive = float64(stats.ActiveBusinesses) / float64(stats.TotalBusinesses) * 100
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Business stats fetched successfully", stats))
}
