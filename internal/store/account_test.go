package store

import (
	"fmt"
	"testing"

	"bank-ledger/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) (*AccountStore, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Account{}))
	return NewAccountStore(db), db
}

func TestAccountLookups(t *testing.T) {
	s, db := newTestStore(t)

	user := &models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	account := &models.Account{UserID: user.ID, BalanceCent: 1234}
	require.NoError(t, db.Create(account).Error)

	got, err := s.ByID(account.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.EqualValues(t, 1234, got.BalanceCent)

	got, err = s.ByUserID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, account.ID, got.ID)
}

func TestAccountAbsenceIsNotAnError(t *testing.T) {
	s, _ := newTestStore(t)

	got, err := s.ByID("no-such-account")
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = s.ByUserID("no-such-user")
	require.NoError(t, err)
	require.Nil(t, got)
}
