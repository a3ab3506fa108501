package ports

import (
	"context"

	"github.com/fitlink/trainer-directory/internal/core/domain"
)

// TrainerInput carries the descriptive fields submitted on registration.
// ProfilePictureURL is filled by the upload pipeline before the service is
// called; an empty value means no picture was stored.
type TrainerInput struct {
	FullName          string
	Email             string
	Phone             string
	Category          string
	Experience        string
	Location          string
	Bio               string
	ProfilePictureURL string
}

// TrainerPage is the paginated directory listing.
type TrainerPage struct {
	Items []*domain.Trainer
	Total int64
	Page  int
	Pages int
}

// TrainerService defines the directory use cases.
type TrainerService interface {
	Create(ctx context.Context, input TrainerInput) (*domain.Trainer, error)
	List(ctx context.Context, page, limit int) (*TrainerPage, error)
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Trainer, error)
	Delete(ctx context.Context, id string) error
}
