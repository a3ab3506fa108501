package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitlink/trainer-directory/internal/core/domain"
)

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	FullName          string             `bson:"full_name"`
	Username          string             `bson:"username"`
	Email             string             `bson:"email"`
	PasswordHash      string             `bson:"password_hash"`
	Phone             string             `bson:"phone,omitempty"`
	Gender            string             `bson:"gender,omitempty"`
	DateOfBirth       time.Time          `bson:"date_of_birth,omitempty"`
	Address           string             `bson:"address,omitempty"`
	ProfilePictureURL string             `bson:"profile_picture_url,omitempty"`
	Role              string             `bson:"role"`
	CreatedAt         time.Time          `bson:"created_at"`
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:                d.ID.Hex(),
		FullName:          d.FullName,
		Username:          d.Username,
		Email:             d.Email,
		PasswordHash:      d.PasswordHash,
		Phone:             d.Phone,
		Gender:            d.Gender,
		DateOfBirth:       d.DateOfBirth,
		Address:           d.Address,
		ProfilePictureURL: d.ProfilePictureURL,
		Role:              d.Role,
		CreatedAt:         d.CreatedAt.UTC(),
	}
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		FullName:          user.FullName,
		Username:          user.Username,
		Email:             user.Email,
		PasswordHash:      user.PasswordHash,
		Phone:             user.Phone,
		Gender:            user.Gender,
		DateOfBirth:       user.DateOfBirth,
		Address:           user.Address,
		ProfilePictureURL: user.ProfilePictureURL,
		Role:              user.Role,
		CreatedAt:         user.CreatedAt.UTC(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the unique username and email indexes.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
