package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/Gothsec/centro-digital/middleware"
	"github.com/Gothsec/centro-digital/models"
	"github.com/Gothsec/centro-digital/services"
	"github.com/gin-gonic/gin"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Revokes the current session and clears the auth cookie
// @Tags Dashboard - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	token, ok := middleware.GetAdminTokenFromContext(c)
	if ok {
		if err := services.GetSessionService().DeleteSession(c.Request.Context(), token); err != nil {
			// Cookie is cleared regardless; the token dies at its JWT expiry
			log.Printf("[admin.logout] failed to revoke session: %v", err)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", "", -1, "/", "", false, true)

	log.Printf("[admin.logout] done")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
