package repositories

import (
	"errors"
	"strings"

	"mentorlink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// CandidateFilter is the typed discovery filter. Empty fields are inactive;
// active fields combine with logical AND. ExcludeIDs always contains at
// least the requesting user.
type CandidateFilter struct {
	Role       models.UserRole
	Skill      string
	Interest   string
	Search     string
	ExcludeIDs []string
	Limit      int
}

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	Update(db *gorm.DB, user *models.User) error
	Delete(db *gorm.DB, userID string) error
	FindCandidates(db *gorm.DB, criteria CandidateFilter) ([]models.User, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks up a user by email, case-insensitively. Emails are
// stored lowercase, so matching lowercases the input rather than the column.
func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	err := db.Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) Update(db *gorm.DB, user *models.User) error {
	result := db.Model(user).Updates(map[string]interface{}{
		"name":      user.Name,
		"role":      user.Role,
		"skills":    user.Skills,
		"interests": user.Interests,
		"bio":       user.Bio,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes the user and every connection referencing it in one
// transaction, so no dangling relationship records survive.
func (r *UserRepositoryImpl) Delete(db *gorm.DB, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("requester_id = ? OR recipient_id = ?", userID, userID).
			Delete(&models.Connection{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", userID).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

func (r *UserRepositoryImpl) FindCandidates(db *gorm.DB, criteria CandidateFilter) ([]models.User, error) {
	query := db.Model(&models.User{})

	if criteria.Role != "" {
		query = query.Where("role = ?", criteria.Role)
	}
	if criteria.Skill != "" {
		query = query.Where("skills::text ILIKE ? ESCAPE '\\'", likePattern(criteria.Skill))
	}
	if criteria.Interest != "" {
		query = query.Where("interests::text ILIKE ? ESCAPE '\\'", likePattern(criteria.Interest))
	}
	if criteria.Search != "" {
		pattern := likePattern(criteria.Search)
		query = query.Where(
			"name ILIKE ? ESCAPE '\\' OR bio ILIKE ? ESCAPE '\\' OR skills::text ILIKE ? ESCAPE '\\' OR interests::text ILIKE ? ESCAPE '\\'",
			pattern, pattern, pattern, pattern,
		)
	}
	if len(criteria.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", criteria.ExcludeIDs)
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 50
	}

	var users []models.User
	err := query.Order("created_at DESC").Limit(limit).Find(&users).Error
	return users, err
}

// likePattern builds a substring ILIKE pattern from user input, escaping
// LIKE metacharacters so the input is matched literally.
func likePattern(term string) string {
	return "%" + EscapeLike(term) + "%"
}

// EscapeLike escapes \, % and _ for use in a LIKE/ILIKE pattern with
// ESCAPE '\'. User-supplied filter text must never act as pattern syntax.
func EscapeLike(term string) string {
	var b strings.Builder
	b.Grow(len(term))
	for _, r := range term {
		switch r {
		case '\\', '%', '_':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
