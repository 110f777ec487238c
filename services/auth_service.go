package services

import (
	"context"
	"errors"
	"strings"

	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/models"
	"liamandmia.wedding/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "invalid email or password"
)

// IAuthService gates the dashboard. Identity-provider cryptography is
// out of scope; a bcrypt check against the seeded admin account stands
// in as the boundary.
type IAuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

type AuthService struct {
	users repositories.IUserRepository
}

func NewAuthService() IAuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

func NewAuthServiceWithRepo(users repositories.IUserRepository) IAuthService {
	return &AuthService{users: users}
}

// Authenticate verifies the password against the stored hash. Lookup
// misses and hash mismatches collapse into one error; callers learn
// nothing about which half failed.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Error("Authenticate: user lookup failed", zap.Error(err))
		}
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
