package dto

import (
	"time"

	"mentorlink_backend/internal/models"
)

// UpdateProfileRequest - partial profile update. Nil means "leave unchanged";
// a present empty slice clears the array. Email and password are immutable
// through this path.
type UpdateProfileRequest struct {
	Name      *string   `json:"name,omitempty" validate:"omitempty,max=100"`
	Role      *string   `json:"role,omitempty" validate:"omitempty,is-user-role"`
	Bio       *string   `json:"bio,omitempty" validate:"omitempty,max=500"`
	Skills    *[]string `json:"skills,omitempty" validate:"omitempty,dive,max=100"`
	Interests *[]string `json:"interests,omitempty" validate:"omitempty,dive,max=100"`
}

// Empty reports whether the request carries no fields at all.
func (r *UpdateProfileRequest) Empty() bool {
	return r.Name == nil && r.Role == nil && r.Bio == nil && r.Skills == nil && r.Interests == nil
}

// UserProfile - public profile projection. The password hash never appears
// here; GetSkills/GetInterests preserve array order and duplicates.
type UserProfile struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	Skills    []string        `json:"skills"`
	Interests []string        `json:"interests"`
	Bio       string          `json:"bio"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewUserProfile projects a stored user onto its public shape.
func NewUserProfile(u *models.User) *UserProfile {
	return &UserProfile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Skills:    u.GetSkills(),
		Interests: u.GetInterests(),
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}

// NewUserProfiles projects a slice, keeping order.
func NewUserProfiles(users []models.User) []*UserProfile {
	profiles := make([]*UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, NewUserProfile(&users[i]))
	}
	return profiles
}
