package repositories

import (
	"errors"

	"mentorlink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrConnectionNotFound = errors.New("connection not found")

	// ErrDuplicatePair surfaces a unique violation on the canonical pair key.
	// Two concurrent CreateRequest calls for the same pair both pass the
	// application-level pre-check; the index lets exactly one insert through.
	ErrDuplicatePair = errors.New("connection already exists for this pair")
)

// ConnectionListFilter selects records by direction and status relative to
// one user, mirroring the list types the API exposes.
type ConnectionListFilter struct {
	RequesterID string
	RecipientID string
	EitherID    string
	Status      models.ConnectionStatus
}

type ConnectionRepository interface {
	Create(db *gorm.DB, conn *models.Connection) error
	FindByID(db *gorm.DB, id string) (*models.Connection, error)
	FindByPair(db *gorm.DB, a, b string) (*models.Connection, error)
	UpdateStatus(db *gorm.DB, id string, status models.ConnectionStatus) (*models.Connection, error)
	Delete(db *gorm.DB, id string) error
	List(db *gorm.DB, criteria ConnectionListFilter) ([]models.Connection, error)
	RelatedUserIDs(db *gorm.DB, userID string) ([]string, error)
}

type ConnectionRepositoryImpl struct{}

func NewConnectionRepository() ConnectionRepository {
	return &ConnectionRepositoryImpl{}
}

func (r *ConnectionRepositoryImpl) Create(db *gorm.DB, conn *models.Connection) error {
	err := db.Create(conn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicatePair
		}
		return err
	}
	return nil
}

func (r *ConnectionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Connection, error) {
	var conn models.Connection
	err := db.First(&conn, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

// FindByPair returns the record for the unordered pair {a,b} regardless of
// which side initiated it, or ErrConnectionNotFound.
func (r *ConnectionRepositoryImpl) FindByPair(db *gorm.DB, a, b string) (*models.Connection, error) {
	var conn models.Connection
	err := db.First(&conn, "pair_key = ?", models.PairKeyFor(a, b)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

func (r *ConnectionRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ConnectionStatus) (*models.Connection, error) {
	result := db.Model(&models.Connection{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrConnectionNotFound
	}
	return r.FindByID(db, id)
}

func (r *ConnectionRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Connection{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConnectionNotFound
	}
	return nil
}

// List returns matching records newest-first with both participants
// preloaded, so callers can project the counterpart's public profile without
// extra queries.
func (r *ConnectionRepositoryImpl) List(db *gorm.DB, criteria ConnectionListFilter) ([]models.Connection, error) {
	query := db.Model(&models.Connection{}).
		Preload("Requester").
		Preload("Recipient")

	if criteria.RequesterID != "" {
		query = query.Where("requester_id = ?", criteria.RequesterID)
	}
	if criteria.RecipientID != "" {
		query = query.Where("recipient_id = ?", criteria.RecipientID)
	}
	if criteria.EitherID != "" {
		query = query.Where("requester_id = ? OR recipient_id = ?", criteria.EitherID, criteria.EitherID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var conns []models.Connection
	err := query.Order("created_at DESC").Find(&conns).Error
	return conns, err
}

// RelatedUserIDs returns the counterpart id of every connection record the
// user appears in, in any status. Discovery uses this as its exclusion set.
func (r *ConnectionRepositoryImpl) RelatedUserIDs(db *gorm.DB, userID string) ([]string, error) {
	var conns []models.Connection
	err := db.Select("requester_id", "recipient_id").
		Where("requester_id = ? OR recipient_id = ?", userID, userID).
		Find(&conns).Error
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(conns))
	for i := range conns {
		ids = append(ids, conns[i].CounterpartOf(userID))
	}
	return ids, nil
}
