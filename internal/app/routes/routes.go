package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alumlink/portal/internal/app/controllers"
	"github.com/alumlink/portal/internal/app/models/dto"
	"github.com/alumlink/portal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	directoryController *controllers.DirectoryController,
	contentController *controllers.ContentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// Degree reference data is public so the sign-up form can offer it
	v1.GET("/degrees", directoryController.ListDegrees)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		profileRoutes := authenticated.Group("/profile")
		{
			profileRoutes.GET("/me", profileController.GetProfile)
			profileRoutes.PUT("/me", profileController.UpdateProfile)
			profileRoutes.GET("/overview", profileController.GetOverview)

			profileRoutes.GET("/socials", profileController.ListSocials)
			profileRoutes.POST("/socials", profileController.AddSocial)
			profileRoutes.DELETE("/socials/:id", profileController.DeleteSocial)

			profileRoutes.GET("/employment", profileController.ListEmployment)
			profileRoutes.POST("/employment", profileController.AddEmployment)
			profileRoutes.DELETE("/employment/:id", profileController.DeleteEmployment)
		}

		authenticated.GET("/directory", directoryController.ListDirectory)

		announcements := authenticated.Group("/announcements")
		{
			announcements.GET("", contentController.ListAnnouncements)
			announcements.GET("/:id", contentController.GetAnnouncement)
		}

		events := authenticated.Group("/events")
		{
			events.GET("", contentController.ListEvents)
			events.GET("/:id", contentController.GetEvent)
		}

		campaigns := authenticated.Group("/campaigns")
		{
			campaigns.GET("", contentController.ListCampaigns)
			campaigns.GET("/:id", contentController.GetCampaign)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
