package services

import (
	"context"

	"github.com/misuhub/receivables_app/internal/core/domain"
	"github.com/misuhub/receivables_app/internal/dto"
)

// UserSvcFacade defines operations for operator accounts.
type UserSvcFacade interface {
	// GetUserByID retrieves a specific user by its unique identifier.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// CreateUser registers a new user with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// AuthenticateUser verifies a username/password pair and returns the user.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// FindOrCreateGoogleUser resolves a Google sign-in to a local user, creating one on first login.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
}
