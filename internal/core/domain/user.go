package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleTrainer = "trainer"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a registered account. The password is only ever held as a
// bcrypt hash; the plaintext never leaves the registration call.
type User struct {
	ID                string    `json:"id"`
	FullName          string    `json:"fullName"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	Phone             string    `json:"phone,omitempty"`
	Gender            string    `json:"gender,omitempty"`
	DateOfBirth       time.Time `json:"dateOfBirth,omitzero"`
	Address           string    `json:"address,omitempty"`
	ProfilePictureURL string    `json:"profilePictureUrl,omitempty"`
	Role              string    `json:"role"`
	CreatedAt         time.Time `json:"createdAt"`
}
