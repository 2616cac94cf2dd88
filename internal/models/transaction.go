package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction types.
const (
	TypeDeposit  = "deposit"
	TypeTransfer = "transfer"
	TypeRefund   = "refund"
)

// Transaction statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusReversed  = "reversed"
)

// Transaction is one append-only ledger entry. Rows are never updated;
// corrections are modeled as new compensating refund rows linked through
// ReversedTransactionID.
type Transaction struct {
	ID                    string    `gorm:"primaryKey;size:36" json:"id"`
	FromAccountID         string    `gorm:"size:36;index;not null" json:"from_account_id"`
	ToAccountID           string    `gorm:"size:36;index;not null" json:"to_account_id"`
	AmountCent            int64     `gorm:"not null" json:"amount_cent"`
	Type                  string    `gorm:"size:16;not null" json:"type"`
	Status                string    `gorm:"size:16;index;not null" json:"status"`
	ReversedTransactionID *string   `gorm:"size:36;index" json:"reversed_transaction_id,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
