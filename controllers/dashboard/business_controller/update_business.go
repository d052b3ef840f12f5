package business_controller

import (
	"log"
	"net/http"

	listing_cache "github.com/Gothsec/centro-digital/cache"
	"github.com/Gothsec/centro-digital/config"
	"github.com/Gothsec/centro-digital/models"
	"github.com/Gothsec/centro-digital/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateBusiness godoc
// @Summary Update a business
// @Description Partial update of business fields by ID. When either time of the schedule pair changes, the pair is revalidated as a whole.
// @Tags Dashboard - Businesses
// @Accept json
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Param business body models.UpdateBusinessRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/businesses/{id} [patch]
func UpdateBusiness(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid business ID"))
		return
	}

	var input models.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Find existing business
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

	// Step 2: Revalidate the schedule pair when either endpoint changes
	if input.OpensAt != nil || input.ClosesAt != nil {
		opensAt := business.OpensAt
		closesAt := business.ClosesAt
		if input.OpensAt != nil {
			opensAt = *input.OpensAt
		}
		if input.ClosesAt != nil {
			closesAt = *input.ClosesAt
		}
		if !utils.ValidHoursPair(opensAt, closesAt) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Opening time must be before closing time"))
			return
		}
	}

	// Step 3: Build update map (only non-nil fields)
	updates := make(map[string]interface{})

	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Department != nil {
		updates["department"] = *input.Department
	}
	if input.City != nil {
		updates["city"] = *input.City
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.OpensAt != nil {
		updates["opens_at"] = *input.OpensAt
	}
	if input.ClosesAt != nil {
		updates["closes_at"] = *input.ClosesAt
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}
	if input.Contact != nil {
		updates["contact"] = *input.Contact
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	// Step 4: Apply the update
	if err := config.Gorm.WithContext(ctx).
		Model(&business).
		Updates(updates).Error; err != nil {
		log.Printf("[dashboard.update] failed for %s: %v", businessID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update business"))
		return
	}

	// Step 5: Invalidate the cached listing so reads refetch
	listing_cache.Invalidate()

	// Reload for the response
	if err := config.Gorm.WithContext(ctx).
		First(&business, "id = ?", businessID).Error; err == nil {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Business updated successfully", business))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Business updated successfully", nil))
}
