package directory_routes

import (
	"github.com/Gothsec/centro-digital/controllers/directory/business_controller"
	"github.com/Gothsec/centro-digital/controllers/directory/category_controller"
	"github.com/gin-gonic/gin"
)

// SetupDirectoryRoutes registers the public directory endpoints
func SetupDirectoryRoutes(rg *gin.RouterGroup) {
	businesses := rg.Group("/businesses")
	{
		businesses.GET("", business_controller.GetBusinesses)
		businesses.GET("/:slug", business_controller.GetBusinessBySlug)
		businesses.POST("", business_controller.RegisterBusiness)
	}

	favorites := rg.Group("/favorites")
	{
		favorites.GET("", business_controller.GetFavorites)
		favorites.POST("/:id", business_controller.ToggleFavorite)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", category_controller.GetCategories)
	}
}
