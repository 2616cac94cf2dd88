package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bank-ledger/internal/models"
	"bank-ledger/internal/util"

	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot probe which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// Service handles registration, credential checks and token issuance.
type Service struct {
	db         *gorm.DB
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
}

func NewService(db *gorm.DB, jwtSecret string, ttlHours, bcryptCost int) *Service {
	if ttlHours <= 0 {
		ttlHours = 1
	}
	return &Service{
		db:         db,
		jwtSecret:  jwtSecret,
		tokenTTL:   time.Duration(ttlHours) * time.Hour,
		bcryptCost: bcryptCost,
	}
}

// Register creates a user and its zero-balance account in one atomic scope:
// both rows persist or neither does.
func (s *Service) Register(name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	err := s.db.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := util.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		account := &models.Account{UserID: user.ID, BalanceCent: 0}
		return tx.Create(account).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// ValidateUser checks email and password, returning the matching user.
func (s *Service) ValidateUser(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.db.First(&user, "email = ?", email).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !util.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// Login issues a signed, time-bounded access token for the user.
func (s *Service) Login(user *models.User) (string, error) {
	return util.GenerateToken(s.jwtSecret, user.ID, user.Email, s.tokenTTL)
}
