package business_controller

import (
	"net/http"

	"github.com/Gothsec/centro-digital/models"
	"github.com/gin-gonic/gin"
)

// ToggleFavorite godoc
// @Summary Toggle a favorite
// @Description Flips the favorite state of a business id and persists the set. Unknown or stale ids are accepted; they simply never match during filtering.
// @Tags Directory - Favorites
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/favorites/{id} [post]
func ToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Business id is required"))
		return
	}

	isFavorite := favorites.Toggle(c.Request.Context(), id)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorite updated", gin.H{
		"id":          id,
		"is_favorite": isFavorite,
	}))
}

// GetFavorites godoc
// @Summary List favorite ids
// @Tags Directory - Favorites
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/favorites [get]
func GetFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorites fetched successfully", gin.H{
		"ids": favorites.List(),
	}))
}
