package routes

import (
	"mentorlink_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route of the API.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ConnectionHandler.RegisterRoutes(api)
	}
}
