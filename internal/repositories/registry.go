package repositories

// RepositoryContainer holds every repository implementation.
type RepositoryContainer struct {
	User       UserRepository
	Connection ConnectionRepository
}

func NewRepositoryContainer() *RepositoryContainer {
	return &RepositoryContainer{
		User:       NewUserRepository(),
		Connection: NewConnectionRepository(),
	}
}
