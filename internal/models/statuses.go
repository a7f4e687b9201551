package models

type UserRole string
type ConnectionStatus string

const (
	UserRoleMentor UserRole = "mentor"
	UserRoleMentee UserRole = "mentee"

	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusDeclined ConnectionStatus = "declined"
)

// ValidUserRole reports whether role is one of the two enumerated values.
func ValidUserRole(role UserRole) bool {
	return role == UserRoleMentor || role == UserRoleMentee
}

// ValidDecision reports whether status is an allowed resolution of a pending
// request. A request can only move to accepted or declined.
func ValidDecision(status ConnectionStatus) bool {
	return status == ConnectionStatusAccepted || status == ConnectionStatusDeclined
}
