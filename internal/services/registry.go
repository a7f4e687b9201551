package services

import (
	"mentorlink_backend/internal/repositories"
)

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	Auth       AuthService
	User       UserService
	Connection ConnectionService
	Discovery  DiscoveryService
}

func NewServiceContainer(repos *repositories.RepositoryContainer) *ServiceContainer {
	return &ServiceContainer{
		Auth:       NewAuthService(repos.User),
		User:       NewUserService(repos.User),
		Connection: NewConnectionService(repos.Connection, repos.User),
		Discovery:  NewDiscoveryService(repos.User, repos.Connection),
	}
}
