package ports

import (
	"context"

	"github.com/fitlink/trainer-directory/internal/core/domain"
)

// TrainerRepository defines persistence operations for the trainers collection.
// Email uniqueness is enforced by the store itself: Insert returns
// domain.ErrDuplicateTrainer on a duplicate-key write rather than relying on a
// racy pre-insert existence check.
type TrainerRepository interface {
	Insert(ctx context.Context, t *domain.Trainer) (*domain.Trainer, error)
	FindByID(ctx context.Context, id string) (*domain.Trainer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Trainer, error)
	// List returns a page of trainers ordered by registration time (newest
	// first) and the total collection count.
	List(ctx context.Context, page, limit int) ([]*domain.Trainer, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.TrainerStatus) (*domain.Trainer, error)
	Delete(ctx context.Context, id string) error
}
