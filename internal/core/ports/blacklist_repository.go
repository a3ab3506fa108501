package ports

import (
	"context"

	"github.com/fitlink/trainer-directory/internal/core/domain"
)

// BlacklistRepository defines persistence operations for the blacklist
// collection. Entries are unique by email; both Insert and Migrate return
// domain.ErrDuplicateBlacklist when the email already has an entry.
type BlacklistRepository interface {
	Insert(ctx context.Context, e *domain.BlacklistEntry) (*domain.BlacklistEntry, error)
	// Migrate inserts the entry and deletes the source trainer in a single
	// store transaction where the deployment supports one. On a duplicate
	// entry nothing is written and the trainer is left untouched.
	Migrate(ctx context.Context, e *domain.BlacklistEntry, trainerID string) (*domain.BlacklistEntry, error)
	ListAll(ctx context.Context) ([]*domain.BlacklistEntry, error)
}
