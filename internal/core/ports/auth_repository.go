package ports

import (
	"context"

	"github.com/fitlink/trainer-directory/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
// Username and email are unique; Insert returns domain.ErrUserExists on a
// duplicate-key write.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
