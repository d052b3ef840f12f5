package business_controller

import (
	"log"
	"net/http"

	listing_cache "github.com/Gothsec/centro-digital/cache"
	"github.com/Gothsec/centro-digital/config"
	"github.com/Gothsec/centro-digital/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivateBusiness godoc
// @Summary Activate a business
// @Tags Dashboard - Businesses
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/businesses/{id}/activate [post]
func ActivateBusiness(c *gin.Context) {
	setBusinessActive(c, true)
}

// DeactivateBusiness godoc
// @Summary Deactivate a business
// @Description Hides the business from the public directory without deleting it. Stale favorite ids pointing at it stay harmless.
// @Tags Dashboard - Businesses
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/businesses/{id}/deactivate [post]
func DeactivateBusiness(c *gin.Context) {
	setBusinessActive(c, false)
}

func setBusinessActive(c *gin.Context, active bool) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid business ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var business models.Business
	if err := config.Gorm.WithContext(ctx).
		First(&business, "id = ?", businessID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Business not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&business).
		Update("active", active).Error; err != nil {
		log.Printf("[dashboard.active] failed for %s: %v", businessID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update business"))
		return
	}
	business.Active = active

	listing_cache.Invalidate()

	message := "Business deactivated successfully"
	if active {
		message = "Business activated successfully"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, business))
}
