package store

import (
	"errors"
	"fmt"

	"bank-ledger/internal/models"

	"gorm.io/gorm"
)

// AccountStore provides read-only account lookups. Absence of a row is not
// an error here; callers decide what a missing account means.
type AccountStore struct {
	db *gorm.DB
}

func NewAccountStore(db *gorm.DB) *AccountStore {
	return &AccountStore{db: db}
}

// ByID returns the account with the given id, or nil if it does not exist.
func (s *AccountStore) ByID(id string) (*models.Account, error) {
	var account models.Account
	err := s.db.First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("account by id: %w", err)
	}
	return &account, nil
}

// ByUserID returns the account owned by the given user, or nil if absent.
func (s *AccountStore) ByUserID(userID string) (*models.Account, error) {
	var account models.Account
	err := s.db.First(&account, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("account by user id: %w", err)
	}
	return &account, nil
}
