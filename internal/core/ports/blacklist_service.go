package ports

import (
	"context"

	"github.com/fitlink/trainer-directory/internal/core/domain"
)

// BlacklistService defines the blacklist use cases. Both entry points produce
// the same target shape; BlacklistByID is the canonical migration path.
type BlacklistService interface {
	// BlacklistByFields creates an entry from submitted fields, independent of
	// any existing trainer. A trainer matching the email is removed from the
	// directory as best-effort cleanup.
	BlacklistByFields(ctx context.Context, input TrainerInput) (*domain.BlacklistEntry, error)
	// BlacklistByID migrates an existing trainer into the blacklist.
	BlacklistByID(ctx context.Context, id string) (*domain.BlacklistEntry, error)
	ListBlacklisted(ctx context.Context) ([]*domain.BlacklistEntry, error)
}
