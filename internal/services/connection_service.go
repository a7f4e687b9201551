package services

import (
	"mentorlink_backend/internal/models"
	"mentorlink_backend/internal/repositories"
	"mentorlink_backend/internal/services/dto"
	"mentorlink_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConnectionService interface {
	CreateRequest(db *gorm.DB, requesterID string, req *dto.CreateConnectionRequest) (*dto.ConnectionActionResponse, error)
	Resolve(db *gorm.DB, actorID, connectionID string, req *dto.ResolveConnectionRequest) (*dto.ConnectionActionResponse, error)
	Delete(db *gorm.DB, actorID, connectionID string) (*dto.ConnectionActionResponse, error)
	List(db *gorm.DB, userID, listType string) ([]*dto.ConnectionResponse, error)
}

type ConnectionServiceImpl struct {
	connRepo repositories.ConnectionRepository
	userRepo repositories.UserRepository
}

func NewConnectionService(connRepo repositories.ConnectionRepository, userRepo repositories.UserRepository) ConnectionService {
	return &ConnectionServiceImpl{connRepo: connRepo, userRepo: userRepo}
}

// CreateRequest opens a pending connection towards a recipient. Any existing
// record for the pair blocks a new one; the unique pair index closes the
// window left by the existence check under concurrent requests.
func (s *ConnectionServiceImpl) CreateRequest(db *gorm.DB, requesterID string, req *dto.CreateConnectionRequest) (*dto.ConnectionActionResponse, error) {
	if _, err := uuid.Parse(req.RecipientID); err != nil {
		return nil, apperrors.NewBadRequestError("Invalid recipient ID format")
	}
	if req.RecipientID == requesterID {
		return nil, apperrors.ErrSelfConnection
	}

	if _, err := s.userRepo.FindByID(db, req.RecipientID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrRecipientNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	existing, err := s.connRepo.FindByPair(db, requesterID, req.RecipientID)
	if err != nil && !apperrors.Is(err, repositories.ErrConnectionNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		return nil, pairConflict(existing, requesterID)
	}

	conn := &models.Connection{
		RequesterID: requesterID,
		RecipientID: req.RecipientID,
		Status:      models.ConnectionStatusPending,
	}
	if err := s.connRepo.Create(db, conn); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicatePair) {
			return nil, apperrors.ErrConnectionConflict(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ConnectionActionResponse{
		Message:    "Connection request sent successfully",
		Connection: dto.NewConnectionResponse(conn, requesterID),
	}, nil
}

// pairConflict maps an existing record between two users to the error the
// requester should see when trying to open another one.
func pairConflict(existing *models.Connection, requesterID string) error {
	switch existing.Status {
	case models.ConnectionStatusPending:
		if existing.RequesterID == requesterID {
			return apperrors.ErrRequestAlreadyPending
		}
		return apperrors.ErrCounterpartRequestPending
	case models.ConnectionStatusAccepted:
		return apperrors.ErrAlreadyConnected
	case models.ConnectionStatusDeclined:
		if existing.RequesterID == requesterID {
			return apperrors.ErrRequestPreviouslyDeclined
		}
		return apperrors.ErrDeclinedByActor
	}
	return apperrors.ErrAlreadyConnected
}

// Resolve accepts or declines a pending request. Only the recipient may
// resolve, and only while the request is still pending.
func (s *ConnectionServiceImpl) Resolve(db *gorm.DB, actorID, connectionID string, req *dto.ResolveConnectionRequest) (*dto.ConnectionActionResponse, error) {
	decision := models.ConnectionStatus(req.Status)
	if !models.ValidDecision(decision) {
		return nil, apperrors.NewBadRequestError("Status must be either accepted or declined")
	}
	if _, err := uuid.Parse(connectionID); err != nil {
		return nil, apperrors.NewBadRequestError("Invalid connection ID format")
	}

	conn, err := s.connRepo.FindByID(db, connectionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrConnectionNotFound) {
			return nil, apperrors.ErrConnectionNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if conn.RecipientID != actorID {
		return nil, apperrors.ErrNotRecipient
	}
	if conn.Status != models.ConnectionStatusPending {
		return nil, apperrors.ErrRequestNotPending(string(conn.Status))
	}

	updated, err := s.connRepo.UpdateStatus(db, conn.ID, decision)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	message := "Connection request accepted"
	if decision == models.ConnectionStatusDeclined {
		message = "Connection request declined"
	}
	return &dto.ConnectionActionResponse{
		Message:    message,
		Connection: dto.NewConnectionResponse(updated, actorID),
	}, nil
}

// Delete cancels a pending request or removes an accepted connection.
// Declined records are immutable and stay on file.
func (s *ConnectionServiceImpl) Delete(db *gorm.DB, actorID, connectionID string) (*dto.ConnectionActionResponse, error) {
	if _, err := uuid.Parse(connectionID); err != nil {
		return nil, apperrors.NewBadRequestError("Invalid connection ID format")
	}

	conn, err := s.connRepo.FindByID(db, connectionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrConnectionNotFound) {
			return nil, apperrors.ErrConnectionNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !conn.IsParticipant(actorID) {
		return nil, apperrors.ErrNotParticipant
	}
	if conn.Status == models.ConnectionStatusDeclined {
		return nil, apperrors.ErrDeclinedImmutable
	}

	if err := s.connRepo.Delete(db, conn.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	message := "Connection removed"
	if conn.Status == models.ConnectionStatusPending {
		message = "Connection request cancelled"
	}
	return &dto.ConnectionActionResponse{Message: message}, nil
}

// List returns the caller's connections for one of the five list types,
// newest first. The type is required; a missing or unknown value is a bad
// request.
func (s *ConnectionServiceImpl) List(db *gorm.DB, userID, listType string) ([]*dto.ConnectionResponse, error) {
	filter, err := listFilterFor(userID, listType)
	if err != nil {
		return nil, err
	}

	conns, err := s.connRepo.List(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.ConnectionResponse, 0, len(conns))
	for i := range conns {
		out = append(out, dto.NewConnectionResponse(&conns[i], userID))
	}
	return out, nil
}

func listFilterFor(userID, listType string) (repositories.ConnectionListFilter, error) {
	switch listType {
	case "pending_received":
		return repositories.ConnectionListFilter{RecipientID: userID, Status: models.ConnectionStatusPending}, nil
	case "pending_sent":
		return repositories.ConnectionListFilter{RequesterID: userID, Status: models.ConnectionStatusPending}, nil
	case "accepted":
		return repositories.ConnectionListFilter{EitherID: userID, Status: models.ConnectionStatusAccepted}, nil
	case "declined_sent":
		return repositories.ConnectionListFilter{RequesterID: userID, Status: models.ConnectionStatusDeclined}, nil
	case "declined_received":
		return repositories.ConnectionListFilter{RecipientID: userID, Status: models.ConnectionStatusDeclined}, nil
	}
	return repositories.ConnectionListFilter{}, apperrors.NewBadRequestError("Invalid connection list type: " + listType)
}
