package handler

import (
	"github.com/fitlink/trainer-directory/internal/core/domain"
)

// trainerForm carries the multipart fields shared by trainer registration and
// the blacklist-by-fields submission. The optional profilePicture part is
// read separately via FormFile.
type trainerForm struct {
	FullName   string `form:"fullName"   validate:"required"`
	Email      string `form:"email"      validate:"required,email"`
	Phone      string `form:"phone"`
	Category   string `form:"category"   validate:"required"`
	Experience string `form:"experience"`
	Location   string `form:"location"`
	Bio        string `form:"bio"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// userForm mirrors the original registration client, capitalised Gender
// field included.
type userForm struct {
	FullName    string `form:"fullName"    validate:"required"`
	Username    string `form:"username"    validate:"required"`
	Email       string `form:"email"       validate:"required,email"`
	Password    string `form:"password"    validate:"required"`
	Phone       string `form:"phone"`
	Gender      string `form:"Gender"      validate:"omitempty,oneof=male female other"`
	DateOfBirth string `form:"dateOfBirth"`
	Address     string `form:"address"`
	Role        string `form:"role"        validate:"omitempty,oneof=admin trainer"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Response envelopes (shapes kept from the original API) ---

type trainerResponse struct {
	Message string          `json:"message"`
	Trainer *domain.Trainer `json:"trainer,omitempty"`
}

type trainerPageResponse struct {
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Pages    int               `json:"pages"`
	Trainers []*domain.Trainer `json:"trainers"`
}

type blacklistResponse struct {
	Message string                 `json:"message"`
	Data    *domain.BlacklistEntry `json:"data"`
}

type blacklistListResponse struct {
	Success  bool                     `json:"success"`
	Trainers []*domain.BlacklistEntry `json:"trainers"`
}

// legacyBlacklistResponse keeps the envelope of the old in-place flip route;
// the entry rides under the historical "trainer" key.
type legacyBlacklistResponse struct {
	Message string                 `json:"message"`
	Trainer *domain.BlacklistEntry `json:"trainer"`
}

type userResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
