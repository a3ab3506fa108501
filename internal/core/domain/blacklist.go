package domain

import "time"

// Metadata keys recorded by the blacklist migration.
const (
	MetaBlacklistedAt = "blacklistedAt"
	MetaOriginalID    = "originalId"
)

// BlacklistEntry is a permanently barred provider record, disjoint from
// active trainers. Entries are never updated in place and never deleted.
type BlacklistEntry struct {
	ID                string         `json:"id"`
	FullName          string         `json:"fullName"`
	Email             string         `json:"email"`
	Phone             string         `json:"phone,omitempty"`
	Category          string         `json:"category"`
	Experience        string         `json:"experience,omitempty"`
	Location          string         `json:"location,omitempty"`
	Bio               string         `json:"bio,omitempty"`
	ProfilePictureURL string         `json:"profilePictureUrl,omitempty"`
	Status            TrainerStatus  `json:"status"`
	RegisteredAt      time.Time      `json:"registeredAt"`
	Metadata          map[string]any `json:"metadata"`
}

// EntryFromTrainer copies a trainer into a blacklist entry, preserving the
// original registration time and recording provenance in the metadata.
func EntryFromTrainer(t *Trainer, now time.Time) *BlacklistEntry {
	meta := make(map[string]any, len(t.Metadata)+2)
	for k, v := range t.Metadata {
		meta[k] = v
	}
	meta[MetaOriginalID] = t.ID
	meta[MetaBlacklistedAt] = now.UTC().Format(time.RFC3339)

	return &BlacklistEntry{
		FullName:          t.FullName,
		Email:             t.Email,
		Phone:             t.Phone,
		Category:          t.Category,
		Experience:        t.Experience,
		Location:          t.Location,
		Bio:               t.Bio,
		ProfilePictureURL: t.ProfilePictureURL,
		Status:            StatusBlacklisted,
		RegisteredAt:      t.RegisteredAt,
		Metadata:          meta,
	}
}
