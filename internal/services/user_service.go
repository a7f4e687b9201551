package services

import (
	"html"
	"strings"

	"mentorlink_backend/internal/models"
	"mentorlink_backend/internal/repositories"
	"mentorlink_backend/internal/services/dto"
	"mentorlink_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.UserProfile, error)
	GetUserByID(db *gorm.DB, id string) (*dto.UserProfile, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserProfile, error)
	DeleteAccount(db *gorm.DB, userID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.UserProfile, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserProfile(user), nil
}

func (s *UserServiceImpl) GetUserByID(db *gorm.DB, id string) (*dto.UserProfile, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NewBadRequestError("Invalid user ID format")
	}
	return s.GetProfile(db, id)
}

// UpdateProfile applies a partial update. Name and bio are trimmed and
// HTML-escaped; skills/interests entries are trimmed and empties dropped,
// preserving order and duplicates. Email and password cannot change here.
func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserProfile, error) {
	if req.Empty() {
		return nil, apperrors.ErrEmptyProfileUpdate
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		name := sanitizeText(*req.Name)
		if name == "" {
			return nil, apperrors.NewBadRequestError("Name cannot be empty")
		}
		user.Name = name
	}

	if req.Role != nil {
		role := models.UserRole(*req.Role)
		if !models.ValidUserRole(role) {
			return nil, apperrors.ErrInvalidUserRole
		}
		user.Role = role
	}

	if req.Bio != nil {
		// Length is enforced by the max=500 validation tag before we get
		// here; escaping may expand the stored text past 500 bytes.
		user.Bio = html.EscapeString(*req.Bio)
	}

	if req.Skills != nil {
		user.SetSkills(normalizeList(*req.Skills))
	}
	if req.Interests != nil {
		user.SetInterests(normalizeList(*req.Interests))
	}

	if err := s.userRepo.Update(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return dto.NewUserProfile(user), nil
}

// DeleteAccount removes the user and cascades over every connection
// referencing it.
func (s *UserServiceImpl) DeleteAccount(db *gorm.DB, userID string) error {
	if err := s.userRepo.Delete(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// sanitizeText trims and HTML-escapes a free-text field.
func sanitizeText(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// normalizeList trims entries and drops empties. Duplicates and order are
// preserved deliberately: clients read back exactly what they wrote.
func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
