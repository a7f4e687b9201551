package models

import (
	"gorm.io/gorm"
)

// Connection is the single relationship record between two users. The
// requester initiates, the recipient resolves. At most one record may exist
// per unordered user pair, whichever side initiated.
type Connection struct {
	BaseModel
	RequesterID string           `gorm:"type:uuid;not null;index" json:"requester_id"`
	RecipientID string           `gorm:"type:uuid;not null;index" json:"recipient_id"`
	Status      ConnectionStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// PairKey is the order-normalized pair identity. The unique index on it
	// is what closes the race between two concurrent requests for the same
	// pair: the second insert fails at the store.
	PairKey string `gorm:"uniqueIndex;not null" json:"-"`

	// Relations
	Requester *User `gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE" json:"requester,omitempty"`
	Recipient *User `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"recipient,omitempty"`
}

// PairKeyFor returns the canonical key for an unordered user pair:
// min(a,b) + "|" + max(a,b). Both request directions map to the same key.
func PairKeyFor(a, b string) string {
	if a < b {
		return a + "|" + b
	}
	return b + "|" + a
}

// BeforeCreate fills the canonical pair key.
func (c *Connection) BeforeCreate(tx *gorm.DB) error {
	if err := c.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if c.PairKey == "" {
		c.PairKey = PairKeyFor(c.RequesterID, c.RecipientID)
	}
	return nil
}

// CounterpartOf returns the other participant's id relative to userID.
func (c *Connection) CounterpartOf(userID string) string {
	if c.RequesterID == userID {
		return c.RecipientID
	}
	return c.RequesterID
}

// IsParticipant reports whether userID is either side of the record.
func (c *Connection) IsParticipant(userID string) bool {
	return c.RequesterID == userID || c.RecipientID == userID
}
