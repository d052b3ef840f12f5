package business_controller

import (
	"net/http"

	"github.com/Gothsec/centro-digital/config"
	"github.com/Gothsec/centro-digital/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBusinessByID godoc
// @Summary Get a business by ID
// @Description Dashboard detail view, any status
// @Tags Dashboard - Businesses
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/businesses/{id} [get]
func GetBusinessByID(c *gin.Context) {
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

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Business fetched successfully", business))
}
