// Package services contains the server-side business logic between the
// protocol handler and the repositories.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/common"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/models"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/repositories/departments"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the email is unknown, so a lookup miss
// costs the same as a password mismatch.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService verifies department credentials. It never logs or returns the
// raw password.
type AuthService struct {
	repo departments.Repository
}

func NewAuthService(repo departments.Repository) *AuthService {
	return &AuthService{repo: repo}
}

// Authenticate returns the department matching email and password, or
// common.ErrInvalidCredentials. Store failures are wrapped and returned
// as-is so the caller can report them separately from a credential miss.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.Department, error) {

	dept, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("credential lookup: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dept.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	return dept, nil
}

// HashPassword produces the stored form of a department password. Used by
// provisioning.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
