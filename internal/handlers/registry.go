package handlers

import (
	"mentorlink_backend/internal/services"
	"mentorlink_backend/internal/validator"
)

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	UserHandler       *UserHandler
	ConnectionHandler *ConnectionHandler
}

func NewAppHandlers(v *validator.Validator, svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:       NewAuthHandler(base, svc.Auth),
		UserHandler:       NewUserHandler(base, svc.User, svc.Discovery),
		ConnectionHandler: NewConnectionHandler(base, svc.Connection),
	}
}
