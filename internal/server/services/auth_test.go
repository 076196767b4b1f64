package services

import (
	"context"
	"testing"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/common"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/models"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/repositories/departments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDepartment(t *testing.T, repo departments.Repository, email, password, name string) *models.Department {
	t.Helper()

	hash, err := HashPassword(password)
	require.NoError(t, err)

	dept, err := repo.Create(context.Background(), &models.Department{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	require.NoError(t, err)
	return dept
}

func TestAuthenticate_Success(t *testing.T) {
	repo := departments.NewInMemoryRepository()
	seedDepartment(t, repo, "cs@dept.edu", "secret123", "Computer Science")

	svc := NewAuthService(repo)

	dept, err := svc.Authenticate(context.Background(), "cs@dept.edu", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", dept.Name)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := departments.NewInMemoryRepository()
	seedDepartment(t, repo, "cs@dept.edu", "secret123", "Computer Science")

	svc := NewAuthService(repo)

	_, err := svc.Authenticate(context.Background(), "cs@dept.edu", "wrong-password")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc := NewAuthService(departments.NewInMemoryRepository())

	_, err := svc.Authenticate(context.Background(), "ghost@dept.edu", "whatever")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthenticate_RepeatedAttemptsAllowed(t *testing.T) {
	repo := departments.NewInMemoryRepository()
	seedDepartment(t, repo, "cs@dept.edu", "secret123", "Computer Science")

	svc := NewAuthService(repo)
	ctx := context.Background()

	// unlimited attempts, no lockout
	for i := 0; i < 5; i++ {
		_, err := svc.Authenticate(ctx, "cs@dept.edu", "wrong")
		assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	}

	_, err := svc.Authenticate(ctx, "cs@dept.edu", "secret123")
	assert.NoError(t, err)
}

func TestHashPassword_NotPlaintext(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotContains(t, hash, "secret123")
}
