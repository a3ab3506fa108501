package ports

import (
	"context"
	"time"

	"github.com/fitlink/trainer-directory/internal/core/domain"
)

// RegisterUserInput carries the account fields submitted on registration.
type RegisterUserInput struct {
	FullName          string
	Username          string
	Email             string
	Password          string
	Phone             string
	Gender            string
	DateOfBirth       time.Time
	Address           string
	Role              string
	ProfilePictureURL string
}

// AuthService covers account registration and the admin login boundary.
type AuthService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
