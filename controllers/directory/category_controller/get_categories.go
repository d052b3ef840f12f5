package category_controller

import (
	"net/http"

	listing_cache "github.com/Gothsec/centro-digital/cache"
	"github.com/Gothsec/centro-digital/config"
	"github.com/Gothsec/centro-digital/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary List categories
// @Description Directory taxonomy with the number of active businesses per category, cached in-process
// @Tags Directory - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/categories [get]
func GetCategories(c *gin.Context) {
	if cached, ok := listing_cache.GetCategories(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", cached))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var categories []models.Category
	if err := config.Gorm.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	// Count active businesses per category in one pass
	type categoryCount struct {
		Category string
		Count    int
	}
	var counts []categoryCount
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Business{}).
		Select("category, COUNT(*) as count").
		Where("active = true").
		Group("category").
		Scan(&counts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count businesses"))
		return
	}

	countByName := make(map[string]int, len(counts))
	for _, cc := range counts {
		countByName[cc.Category] = cc.Count
	}

	result := make([]models.CategoryWithCount, 0, len(categories))
	for _, cat := range categories {
		result = append(result, models.CategoryWithCount{
			ID:         cat.ID,
			Name:       cat.Name,
			Slug:       cat.Slug,
			Icon:       cat.Icon,
			Businesses: countByName[cat.Name],
		})
	}

	listing_cache.SetCategories(result)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", result))
}
