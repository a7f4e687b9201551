package dto

import (
	"time"

	"mentorlink_backend/internal/models"
)

// CreateConnectionRequest - send a connection request.
type CreateConnectionRequest struct {
	RecipientID string `json:"recipientId" validate:"required,uuid"`
}

// ResolveConnectionRequest - accept or decline a received request.
type ResolveConnectionRequest struct {
	Status models.ConnectionStatus `json:"status" validate:"required,is-connection-decision"`
}

// ConnectionResponse - one relationship record with the counterpart's public
// profile attached, as seen from the listing user's side.
type ConnectionResponse struct {
	ID          string                  `json:"id"`
	RequesterID string                  `json:"requester_id"`
	RecipientID string                  `json:"recipient_id"`
	Status      models.ConnectionStatus `json:"status"`
	CreatedAt   time.Time               `json:"created_at"`
	User        *UserProfile            `json:"user,omitempty"`
}

// NewConnectionResponse projects a connection relative to viewerID: User is
// the other participant when both sides are preloaded.
func NewConnectionResponse(conn *models.Connection, viewerID string) *ConnectionResponse {
	resp := &ConnectionResponse{
		ID:          conn.ID,
		RequesterID: conn.RequesterID,
		RecipientID: conn.RecipientID,
		Status:      conn.Status,
		CreatedAt:   conn.CreatedAt,
	}

	var counterpart *models.User
	if conn.RequesterID == viewerID {
		counterpart = conn.Recipient
	} else {
		counterpart = conn.Requester
	}
	if counterpart != nil {
		resp.User = NewUserProfile(counterpart)
	}
	return resp
}

// ConnectionActionResponse - result of a mutation, message plus the record.
type ConnectionActionResponse struct {
	Message    string              `json:"message"`
	Connection *ConnectionResponse `json:"connection,omitempty"`
}
