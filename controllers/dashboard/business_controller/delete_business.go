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

// DeleteBusiness godoc
// @Summary Delete a business
// @Description Removes the business row and its Cloudinary folder. Favorite ids pointing at it are not pruned; they simply stop matching.
// @Tags Dashboard - Businesses
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/businesses/{id} [delete]
func DeleteBusiness(c *gin.Context) {
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
		Delete(&business).Error; err != nil {
		log.Printf("[dashboard.delete] failed for %s: %v", businessID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete business"))
		return
	}

	// Best-effort: the row is gone, leftover images are not fatal
	if err := cloudinaryService.DeleteBusinessFolder(ctx, "businesses/"+business.Slug); err != nil {
		log.Printf("[dashboard.delete] cloudinary cleanup failed for %s: %v", business.Slug, err)
	}

	listing_cache.Invalidate()

	log.Printf("[dashboard.delete] removed %s (%s)", business.Name, business.ID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Business deleted successfully", gin.H{"id": businessID}))
}
