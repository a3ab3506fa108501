package domain

import (
	"errors"
	"time"
)

// TrainerStatus represents the directory review state of a trainer profile.
type TrainerStatus string

const (
	StatusPending     TrainerStatus = "pending"
	StatusApproved    TrainerStatus = "approved"
	StatusRejected    TrainerStatus = "rejected"
	StatusBlacklisted TrainerStatus = "blacklisted"
)

// validTransitions defines the allowed review state machine. The blacklisted
// state is intentionally absent: it is only reachable through the blacklist
// migration, never through a plain status update.
var validTransitions = map[TrainerStatus][]TrainerStatus{
	StatusPending: {StatusApproved, StatusRejected},
}

var ErrTrainerNotFound = errors.New("trainer not found")
var ErrDuplicateTrainer = errors.New("trainer with this email already exists")
var ErrDuplicateBlacklist = errors.New("trainer is already blacklisted")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrValidation = errors.New("validation failed")

// IsValid reports whether s is one of the four known statuses.
func (s TrainerStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusBlacklisted:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from s to next is allowed.
func (s TrainerStatus) CanTransitionTo(next TrainerStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Trainer is a service-provider profile awaiting or holding review status.
type Trainer struct {
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
