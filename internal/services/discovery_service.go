package services

import (
	"mentorlink_backend/internal/models"
	"mentorlink_backend/internal/repositories"
	"mentorlink_backend/internal/services/dto"
	"mentorlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const discoveryLimit = 50

type DiscoveryService interface {
	FindCandidates(db *gorm.DB, viewerID string, req *dto.DiscoverRequest) ([]*dto.UserProfile, error)
}

type DiscoveryServiceImpl struct {
	userRepo repositories.UserRepository
	connRepo repositories.ConnectionRepository
}

func NewDiscoveryService(userRepo repositories.UserRepository, connRepo repositories.ConnectionRepository) DiscoveryService {
	return &DiscoveryServiceImpl{userRepo: userRepo, connRepo: connRepo}
}

// FindCandidates searches users the viewer could still connect with. The
// viewer and everyone already linked to them by any record, whatever its
// status, are excluded.
func (s *DiscoveryServiceImpl) FindCandidates(db *gorm.DB, viewerID string, req *dto.DiscoverRequest) ([]*dto.UserProfile, error) {
	if req.Role != "" && !models.ValidUserRole(models.UserRole(req.Role)) {
		return nil, apperrors.ErrInvalidRoleFilter
	}

	relatedIDs, err := s.connRepo.RelatedUserIDs(db, viewerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	filter := repositories.CandidateFilter{
		Role:       models.UserRole(req.Role),
		Skill:      req.Skill,
		Interest:   req.Interest,
		Search:     req.Search,
		ExcludeIDs: append(relatedIDs, viewerID),
		Limit:      discoveryLimit,
	}

	users, err := s.userRepo.FindCandidates(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserProfiles(users), nil
}
