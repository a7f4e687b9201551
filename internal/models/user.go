package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         UserRole       `gorm:"type:varchar(20);not null" json:"role"`
	Skills       datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Interests    datatypes.JSON `gorm:"type:jsonb" json:"interests"`
	Bio          string         `gorm:"type:text" json:"bio"`
}

// GetSkills returns the skills array as a slice of strings. Order and
// duplicates are preserved exactly as written.
func (u *User) GetSkills() []string {
	var skills []string
	if len(u.Skills) > 0 {
		_ = json.Unmarshal(u.Skills, &skills)
	}
	return skills
}

// GetInterests returns the interests array as a slice of strings.
func (u *User) GetInterests() []string {
	var interests []string
	if len(u.Interests) > 0 {
		_ = json.Unmarshal(u.Interests, &interests)
	}
	return interests
}

// SetSkills stores the skills array.
func (u *User) SetSkills(skills []string) {
	data, _ := json.Marshal(skills)
	u.Skills = datatypes.JSON(data)
}

// SetInterests stores the interests array.
func (u *User) SetInterests(interests []string) {
	data, _ := json.Marshal(interests)
	u.Interests = datatypes.JSON(data)
}
