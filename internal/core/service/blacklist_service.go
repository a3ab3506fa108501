package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitlink/trainer-directory/internal/core/domain"
	"github.com/fitlink/trainer-directory/internal/core/ports"
)

type BlacklistService struct {
	trainers  ports.TrainerRepository
	blacklist ports.BlacklistRepository
	cache     DirectoryCache
	logger    zerolog.Logger
}

func NewBlacklistService(
	trainers ports.TrainerRepository,
	blacklist ports.BlacklistRepository,
	cache DirectoryCache,
	logger zerolog.Logger,
) *BlacklistService {
	return &BlacklistService{trainers: trainers, blacklist: blacklist, cache: cache, logger: logger}
}

// BlacklistByFields creates an entry straight from submitted fields. A
// directory trainer matching the email is linked in the metadata and removed
// as best-effort cleanup; its absence, or a failed delete, does not roll back
// the entry.
func (s *BlacklistService) BlacklistByFields(ctx context.Context, input ports.TrainerInput) (*domain.BlacklistEntry, error) {
	if input.FullName == "" || input.Email == "" || input.Category == "" {
		return nil, fmt.Errorf("%w: fullName, email and category are required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	entry := &domain.BlacklistEntry{
		FullName:          input.FullName,
		Email:             input.Email,
		Phone:             input.Phone,
		Category:          input.Category,
		Experience:        input.Experience,
		Location:          input.Location,
		Bio:               input.Bio,
		ProfilePictureURL: input.ProfilePictureURL,
		Status:            domain.StatusBlacklisted,
		RegisteredAt:      now,
		Metadata: map[string]any{
			domain.MetaBlacklistedAt: now.Format(time.RFC3339),
		},
	}

	// Informational linkage only: the entry is valid with or without a
	// matching directory record.
	existing, err := s.trainers.FindByEmail(ctx, input.Email)
	if err == nil {
		entry.Metadata[domain.MetaOriginalID] = existing.ID
		entry.RegisteredAt = existing.RegisteredAt
	}

	created, err := s.blacklist.Insert(ctx, entry)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.trainers.Delete(ctx, existing.ID); err != nil {
			s.logger.Warn().Err(err).Str("trainer_id", existing.ID).Msg("blacklist cleanup: trainer delete failed")
		}
	}
	s.invalidate(ctx)

	s.logger.Info().Str("email", created.Email).Msg("trainer blacklisted by fields")
	return created, nil
}

// BlacklistByID migrates an existing trainer into the blacklist: every
// descriptive field is copied, provenance is recorded, and the source record
// is deleted in the same store transaction where the deployment supports one.
func (s *BlacklistService) BlacklistByID(ctx context.Context, id string) (*domain.BlacklistEntry, error) {
	trainer, err := s.trainers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := domain.EntryFromTrainer(trainer, time.Now().UTC())

	created, err := s.blacklist.Migrate(ctx, entry, trainer.ID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.logger.Info().Str("trainer_id", trainer.ID).Str("email", trainer.Email).Msg("trainer migrated to blacklist")
	return created, nil
}

func (s *BlacklistService) ListBlacklisted(ctx context.Context) ([]*domain.BlacklistEntry, error) {
	return s.blacklist.ListAll(ctx)
}

func (s *BlacklistService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
