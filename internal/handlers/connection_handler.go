package handlers

import (
	"net/http"

	"mentorlink_backend/internal/middleware"
	"mentorlink_backend/internal/services"
	"mentorlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ConnectionHandler struct {
	*BaseHandler
	connectionService services.ConnectionService
}

func NewConnectionHandler(base *BaseHandler, connectionService services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{
		BaseHandler:       base,
		connectionService: connectionService,
	}
}

// RegisterRoutes registers the connection workflow routes, all
// authenticated.
func (h *ConnectionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	connections := rg.Group("/connections")
	connections.Use(middleware.AuthMiddleware())
	{
		connections.POST("", h.Create)
		connections.GET("", h.List)
		connections.PUT("/:id", h.Resolve)
		connections.DELETE("/:id", h.Delete)
	}
}

func (h *ConnectionHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateConnectionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.connectionService.CreateRequest(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ConnectionHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	connections, err := h.connectionService.List(db, userID, c.Query("type"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, connections)
}

func (h *ConnectionHandler) Resolve(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ResolveConnectionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.connectionService.Resolve(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ConnectionHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.connectionService.Delete(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
