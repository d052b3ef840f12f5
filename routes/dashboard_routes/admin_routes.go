package dashboard_routes

import (
	"github.com/Gothsec/centro-digital/controllers/dashboard/admin_controller/auth"
	"github.com/Gothsec/centro-digital/controllers/dashboard/business_controller"
	"github.com/Gothsec/centro-digital/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up all dashboard routes with appropriate middleware
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", admin_auth_controller.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// Auth
		protected.POST("/logout", admin_auth_controller.AdminLogout)
		protected.GET("/me", admin_auth_controller.GetAdminMe)

		// Businesses
		protected.GET("/businesses", business_controller.GetBusinesses)
		protected.GET("/businesses/stats", business_controller.GetBusinessStats)
		protected.GET("/businesses/:id", business_controller.GetBusinessByID)
		protected.PATCH("/businesses/:id", business_controller.UpdateBusiness)
		protected.DELETE("/businesses/:id", business_controller.DeleteBusiness)
		protected.POST("/businesses/:id/activate", business_controller.ActivateBusiness)
		protected.POST("/businesses/:id/deactivate", business_controller.DeactivateBusiness)
	}
}
