package dto

// DiscoverRequest - query-string filters for candidate discovery. All fields
// optional; active filters combine with AND.
type DiscoverRequest struct {
	Role     string `form:"role" json:"role" validate:"omitempty,is-user-role"`
	Skill    string `form:"skill" json:"skill"`
	Interest string `form:"interest" json:"interest"`
	Search   string `form:"search" json:"search"`
}
