package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitlink/trainer-directory/internal/core/domain"
	"github.com/fitlink/trainer-directory/internal/core/ports"
)

// AuthService implements account registration and login.
type AuthService struct {
	repo       ports.UserRepository
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, bcryptCost: bcryptCost}
}

// Register creates an account. The submitted password is hashed before it is
// handed to the repository; duplicate usernames or emails surface as
// domain.ErrUserExists from the store's unique indexes.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	if input.FullName == "" || input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: fullName, username, email and password are required", domain.ErrValidation)
	}
	if input.Gender != "" && input.Gender != domain.GenderMale && input.Gender != domain.GenderFemale && input.Gender != domain.GenderOther {
		return nil, fmt.Errorf("%w: unknown gender %q", domain.ErrValidation, input.Gender)
	}
	role := input.Role
	if role == "" {
		role = domain.RoleTrainer
	}
	if role != domain.RoleAdmin && role != domain.RoleTrainer {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:          input.FullName,
		Username:          input.Username,
		Email:             input.Email,
		PasswordHash:      string(hash),
		Phone:             input.Phone,
		Gender:            input.Gender,
		DateOfBirth:       input.DateOfBirth,
		Address:           input.Address,
		ProfilePictureURL: input.ProfilePictureURL,
		Role:              role,
		CreatedAt:         time.Now().UTC(),
	}

	return s.repo.Insert(ctx, user)
}

// Login verifies the credentials and issues a signed HS256 token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
