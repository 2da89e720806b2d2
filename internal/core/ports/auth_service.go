package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. City is
// optional; it only feeds the weather endpoint.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	City     string
}

// AuthService defines registration, login and token verification.
//
// Login deliberately returns the same domain.ErrInvalidCredentials for
// "unknown email" and "wrong password" so accounts cannot be enumerated.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Verify parses a bearer token and returns the subject user id.
	Verify(token string) (uint, error)
}
