package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitlink/trainer-directory/internal/core/domain"
	"github.com/fitlink/trainer-directory/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// DirectoryCache caches directory listing pages. Failures inside an
// implementation are logged there, never surfaced: the cache is an
// optimisation, the store stays authoritative.
type DirectoryCache interface {
	Get(ctx context.Context, page, limit int) (*ports.TrainerPage, bool)
	Set(ctx context.Context, page, limit int, p *ports.TrainerPage)
	Invalidate(ctx context.Context)
}

type TrainerService struct {
	repo   ports.TrainerRepository
	cache  DirectoryCache
	logger zerolog.Logger
}

func NewTrainerService(repo ports.TrainerRepository, cache DirectoryCache, logger zerolog.Logger) *TrainerService {
	return &TrainerService{repo: repo, cache: cache, logger: logger}
}

// Create registers a new trainer profile with status pending. Duplicate
// emails are rejected by the store's unique index, not a prior lookup.
func (s *TrainerService) Create(ctx context.Context, input ports.TrainerInput) (*domain.Trainer, error) {
	if input.FullName == "" || input.Email == "" || input.Category == "" {
		return nil, fmt.Errorf("%w: fullName, email and category are required", domain.ErrValidation)
	}

	trainer := &domain.Trainer{
		FullName:          input.FullName,
		Email:             input.Email,
		Phone:             input.Phone,
		Category:          input.Category,
		Experience:        input.Experience,
		Location:          input.Location,
		Bio:               input.Bio,
		ProfilePictureURL: input.ProfilePictureURL,
		Status:            domain.StatusPending,
		RegisteredAt:      time.Now().UTC(),
		Metadata:          map[string]any{},
	}

	created, err := s.repo.Insert(ctx, trainer)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.logger.Info().Str("trainer_id", created.ID).Str("email", created.Email).Msg("trainer registered")
	return created, nil
}

// List returns one page of the directory, newest registrations first.
func (s *TrainerService) List(ctx context.Context, page, limit int) (*ports.TrainerPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, page, limit); ok {
			return cached, nil
		}
	}

	items, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	result := &ports.TrainerPage{
		Items: items,
		Total: total,
		Page:  page,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}
	if s.cache != nil {
		s.cache.Set(ctx, page, limit, result)
	}
	return result, nil
}

// UpdateStatus applies a review decision. Only transitions allowed by the
// status state machine are accepted; blacklisting goes through the migration.
func (s *TrainerService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Trainer, error) {
	next := domain.TrainerStatus(status)
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	trainer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !trainer.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, trainer.Status, next)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.logger.Info().Str("trainer_id", id).Str("from", string(trainer.Status)).Str("to", status).Msg("trainer status updated")
	return updated, nil
}

// Delete permanently removes a trainer from the directory.
func (s *TrainerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)

	s.logger.Info().Str("trainer_id", id).Msg("trainer deleted")
	return nil
}

func (s *TrainerService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
