package services

import (
	"testing"

	"mentorlink_backend/internal/models"
	"mentorlink_backend/internal/repositories"
	"mentorlink_backend/internal/services/dto"
	"mentorlink_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubUserRepo serves a fixed set of users by id.
type stubUserRepo struct {
	repositories.UserRepository
	users map[string]*models.User
}

func (s *stubUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

// stubConnRepo serves one existing record per pair key and records creates.
type stubConnRepo struct {
	repositories.ConnectionRepository
	byPair  map[string]*models.Connection
	byID    map[string]*models.Connection
	created []*models.Connection
}

func (s *stubConnRepo) FindByPair(_ *gorm.DB, a, b string) (*models.Connection, error) {
	if conn, ok := s.byPair[models.PairKeyFor(a, b)]; ok {
		return conn, nil
	}
	return nil, repositories.ErrConnectionNotFound
}

func (s *stubConnRepo) FindByID(_ *gorm.DB, id string) (*models.Connection, error) {
	if conn, ok := s.byID[id]; ok {
		return conn, nil
	}
	return nil, repositories.ErrConnectionNotFound
}

func (s *stubConnRepo) Create(_ *gorm.DB, conn *models.Connection) error {
	s.created = append(s.created, conn)
	return nil
}

func (s *stubConnRepo) UpdateStatus(_ *gorm.DB, id string, status models.ConnectionStatus) (*models.Connection, error) {
	conn, ok := s.byID[id]
	if !ok {
		return nil, repositories.ErrConnectionNotFound
	}
	conn.Status = status
	return conn, nil
}

func (s *stubConnRepo) Delete(_ *gorm.DB, id string) error {
	if _, ok := s.byID[id]; !ok {
		return repositories.ErrConnectionNotFound
	}
	delete(s.byID, id)
	return nil
}

var (
	requesterID = uuid.NewString()
	recipientID = uuid.NewString()
)

func newFixture(existing *models.Connection) (ConnectionService, *stubConnRepo) {
	users := &stubUserRepo{users: map[string]*models.User{
		requesterID: {BaseModel: models.BaseModel{ID: requesterID}},
		recipientID: {BaseModel: models.BaseModel{ID: recipientID}},
	}}
	conns := &stubConnRepo{
		byPair: map[string]*models.Connection{},
		byID:   map[string]*models.Connection{},
	}
	if existing != nil {
		conns.byPair[models.PairKeyFor(existing.RequesterID, existing.RecipientID)] = existing
		conns.byID[existing.ID] = existing
	}
	return NewConnectionService(conns, users), conns
}

func existingConnection(requester, recipient string, status models.ConnectionStatus) *models.Connection {
	return &models.Connection{
		BaseModel:   models.BaseModel{ID: uuid.NewString()},
		RequesterID: requester,
		RecipientID: recipient,
		Status:      status,
	}
}

func assertAppError(t *testing.T, err error, want *apperrors.AppError) {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, want.Code, appErr.Code)
	assert.Equal(t, want.HTTPCode, appErr.HTTPCode)
	assert.Equal(t, want.Message, appErr.Message)
}

func TestCreateRequest_NewPair(t *testing.T) {
	svc, conns := newFixture(nil)

	resp, err := svc.CreateRequest(nil, requesterID, &dto.CreateConnectionRequest{RecipientID: recipientID})

	require.NoError(t, err)
	require.Len(t, conns.created, 1)
	assert.Equal(t, models.ConnectionStatusPending, conns.created[0].Status)
	assert.Equal(t, requesterID, conns.created[0].RequesterID)
	assert.Equal(t, "Connection request sent successfully", resp.Message)
}

func TestCreateRequest_Self(t *testing.T) {
	svc, _ := newFixture(nil)

	_, err := svc.CreateRequest(nil, requesterID, &dto.CreateConnectionRequest{RecipientID: requesterID})

	assertAppError(t, err, apperrors.ErrSelfConnection)
}

func TestCreateRequest_RecipientMissing(t *testing.T) {
	svc, _ := newFixture(nil)

	_, err := svc.CreateRequest(nil, requesterID, &dto.CreateConnectionRequest{RecipientID: uuid.NewString()})

	assertAppError(t, err, apperrors.ErrRecipientNotFound)
}

func TestCreateRequest_InvalidRecipientID(t *testing.T) {
	svc, _ := newFixture(nil)

	_, err := svc.CreateRequest(nil, requesterID, &dto.CreateConnectionRequest{RecipientID: "not-a-uuid"})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

// The conflict ladder: each possible existing record maps to a distinct
// error for the caller.
func TestCreateRequest_ConflictLadder(t *testing.T) {
	cases := []struct {
		name     string
		existing *models.Connection
		want     *apperrors.AppError
	}{
		{
			name:     "own pending request",
			existing: existingConnection(requesterID, recipientID, models.ConnectionStatusPending),
			want:     apperrors.ErrRequestAlreadyPending,
		},
		{
			name:     "counterpart pending request",
			existing: existingConnection(recipientID, requesterID, models.ConnectionStatusPending),
			want:     apperrors.ErrCounterpartRequestPending,
		},
		{
			name:     "already connected",
			existing: existingConnection(requesterID, recipientID, models.ConnectionStatusAccepted),
			want:     apperrors.ErrAlreadyConnected,
		},
		{
			name:     "previously declined by recipient",
			existing: existingConnection(requesterID, recipientID, models.ConnectionStatusDeclined),
			want:     apperrors.ErrRequestPreviouslyDeclined,
		},
		{
			name:     "actor declined the counterpart earlier",
			existing: existingConnection(recipientID, requesterID, models.ConnectionStatusDeclined),
			want:     apperrors.ErrDeclinedByActor,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, conns := newFixture(tc.existing)

			_, err := svc.CreateRequest(nil, requesterID, &dto.CreateConnectionRequest{RecipientID: recipientID})

			assertAppError(t, err, tc.want)
			assert.Empty(t, conns.created)
		})
	}
}

func TestResolve_Accept(t *testing.T) {
	existing := existingConnection(requesterID, recipientID, models.ConnectionStatusPending)
	svc, _ := newFixture(existing)

	resp, err := svc.Resolve(nil, recipientID, existing.ID, &dto.ResolveConnectionRequest{Status: models.ConnectionStatusAccepted})

	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusAccepted, resp.Connection.Status)
}

func TestResolve_NotRecipient(t *testing.T) {
	existing := existingConnection(requesterID, recipientID, models.ConnectionStatusPending)
	svc, _ := newFixture(existing)

	_, err := svc.Resolve(nil, requesterID, existing.ID, &dto.ResolveConnectionRequest{Status: models.ConnectionStatusAccepted})

	assertAppError(t, err, apperrors.ErrNotRecipient)
}

func TestResolve_NotPending(t *testing.T) {
	existing := existingConnection(requesterID, recipientID, models.ConnectionStatusAccepted)
	svc, _ := newFixture(existing)

	_, err := svc.Resolve(nil, recipientID, existing.ID, &dto.ResolveConnectionRequest{Status: models.ConnectionStatusDeclined})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestResolve_InvalidDecision(t *testing.T) {
	existing := existingConnection(requesterID, recipientID, models.ConnectionStatusPending)
	svc, _ := newFixture(existing)

	_, err := svc.Resolve(nil, recipientID, existing.ID, &dto.ResolveConnectionRequest{Status: models.ConnectionStatusPending})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestResolve_NotFound(t *testing.T) {
	svc, _ := newFixture(nil)

	_, err := svc.Resolve(nil, recipientID, uuid.NewString(), &dto.ResolveConnectionRequest{Status: models.ConnectionStatusAccepted})

	assertAppError(t, err, apperrors.ErrConnectionNotFound)
}

func TestDelete_PendingCancelled(t *testing.T) {
	existing := existingConnection(requesterID, recipientID, models.ConnectionStatusPending)
	svc, conns := newFixture(existing)

	resp, err := svc.Delete(nil, requesterID, existing.ID)

	require.NoError(t, err)
	assert.Contains(t, resp.Message, "cancelled")
	assert.Empty(t, conns.byID)
}

func TestDelete_AcceptedRemoved(t *testing.T) {
	existing := existingConnection(requesterID, recipientID, models.ConnectionStatusAccepted)
	svc, _ := newFixture(existing)

	resp, err := svc.Delete(nil, recipientID, existing.ID)

	require.NoError(t, err)
	assert.Contains(t, resp.Message, "removed")
}

func TestDelete_DeclinedImmutable(t *testing.T) {
	existing := existingConnection(requesterID, recipientID, models.ConnectionStatusDeclined)
	svc, conns := newFixture(existing)

	_, err := svc.Delete(nil, requesterID, existing.ID)

	assertAppError(t, err, apperrors.ErrDeclinedImmutable)
	assert.Len(t, conns.byID, 1, "declined records must stay on file")
}

func TestDelete_NonParticipant(t *testing.T) {
	existing := existingConnection(requesterID, recipientID, models.ConnectionStatusPending)
	svc, _ := newFixture(existing)

	_, err := svc.Delete(nil, uuid.NewString(), existing.ID)

	assertAppError(t, err, apperrors.ErrNotParticipant)
}

func TestListFilterFor(t *testing.T) {
	userID := uuid.NewString()

	filter, err := listFilterFor(userID, "pending_received")
	require.NoError(t, err)
	assert.Equal(t, userID, filter.RecipientID)
	assert.Equal(t, models.ConnectionStatusPending, filter.Status)

	filter, err = listFilterFor(userID, "declined_sent")
	require.NoError(t, err)
	assert.Equal(t, userID, filter.RequesterID)
	assert.Equal(t, models.ConnectionStatusDeclined, filter.Status)

	filter, err = listFilterFor(userID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, userID, filter.EitherID)
	assert.Equal(t, models.ConnectionStatusAccepted, filter.Status)

	_, err = listFilterFor(userID, "bogus")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

// The list type is mandatory. Omitting it is a bad request, same as an
// unknown value.
func TestListFilterFor_EmptyType(t *testing.T) {
	_, err := listFilterFor(uuid.NewString(), "")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}
