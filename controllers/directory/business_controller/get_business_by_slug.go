package business_controller

import (
	"net/http"

	"github.com/Gothsec/centro-digital/config"
	"github.com/Gothsec/centro-digital/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetBusinessBySlug godoc
// @Summary Get a business by slug
// @Description Public business detail page data. Inactive businesses are not exposed.
// @Tags Directory - Businesses
// @Produce json
// @Param slug path string true "Business slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/businesses/{slug} [get]
func GetBusinessBySlug(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var business models.Business
	if err := config.Gorm.WithContext(ctx).
		Where("slug = ? AND active = true", slug).
		First(&business).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Business not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Business fetched successfully", business))
}
