package handlers

import (
	"net/http"

	"mentorlink_backend/internal/middleware"
	"mentorlink_backend/internal/services"
	"mentorlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService      services.UserService
	discoveryService services.DiscoveryService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, discoveryService services.DiscoveryService) *UserHandler {
	return &UserHandler{
		BaseHandler:      base,
		userService:      userService,
		discoveryService: discoveryService,
	}
}

// RegisterRoutes registers the profile and discovery routes. Everything
// under /users requires authentication.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", h.GetMyProfile)
		users.PUT("/me", h.UpdateMyProfile)
		users.DELETE("/me", h.DeleteMyAccount)
		users.GET("", h.Discover)
		users.GET("/:id", h.GetUserByID)
	}
}

func (h *UserHandler) GetMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.userService.GetProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.userService.UpdateProfile(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) DeleteMyAccount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.userService.DeleteAccount(db, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account deleted successfully",
	})
}

func (h *UserHandler) Discover(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.DiscoverRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	db := h.GetDB(c)

	profiles, err := h.discoveryService.FindCandidates(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.userService.GetUserByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
