package auth

import (
	"fmt"
	"testing"

	"bank-ledger/internal/models"
	"bank-ledger/internal/util"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Account{}, &models.Transaction{}))
	// bcrypt min cost keeps the suite fast
	return NewService(db, "test-secret", 1, 4), db
}

func TestRegisterCreatesUserAndAccount(t *testing.T) {
	svc, db := newTestService(t)

	user, err := svc.Register("Alice", "Alice@Example.com ", "Sup3rSecret")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice@example.com", user.Email)
	require.NotEqual(t, "Sup3rSecret", user.PasswordHash)

	var account models.Account
	require.NoError(t, db.First(&account, "user_id = ?", user.ID).Error)
	require.EqualValues(t, 0, account.BalanceCent)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, db := newTestService(t)

	_, err := svc.Register("Alice", "alice@example.com", "Sup3rSecret")
	require.NoError(t, err)

	_, err = svc.Register("Other Alice", "ALICE@example.com", "An0therPass")
	require.ErrorIs(t, err, ErrEmailTaken)

	// no extra rows were written
	var users, accounts int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Account{}).Count(&accounts).Error)
	require.EqualValues(t, 1, users)
	require.EqualValues(t, 1, accounts)
}

func TestValidateUser(t *testing.T) {
	svc, _ := newTestService(t)

	registered, err := svc.Register("Alice", "alice@example.com", "Sup3rSecret")
	require.NoError(t, err)

	user, err := svc.ValidateUser("alice@example.com", "Sup3rSecret")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)

	// unknown email and wrong password yield the same error
	_, err = svc.ValidateUser("nobody@example.com", "Sup3rSecret")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.ValidateUser("alice@example.com", "WrongPass1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.Register("Alice", "alice@example.com", "Sup3rSecret")
	require.NoError(t, err)

	token, err := svc.Login(user)
	require.NoError(t, err)

	claims, err := util.ParseToken("test-secret", token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, user.Email, claims.Email)
	require.NotNil(t, claims.ExpiresAt)
}
