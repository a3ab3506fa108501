package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitlink/trainer-directory/internal/core/domain"
)

const collectionTrainers = "trainers"

type TrainerRepository struct {
	col *mongo.Collection
}

func NewTrainerRepository(db *mongo.Database) *TrainerRepository {
	return &TrainerRepository{col: db.Collection(collectionTrainers)}
}

type trainerDoc struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty"`
	FullName          string               `bson:"full_name"`
	Email             string               `bson:"email"`
	Phone             string               `bson:"phone,omitempty"`
	Category          string               `bson:"category"`
	Experience        string               `bson:"experience,omitempty"`
	Location          string               `bson:"location,omitempty"`
	Bio               string               `bson:"bio,omitempty"`
	ProfilePictureURL string               `bson:"profile_picture_url,omitempty"`
	Status            domain.TrainerStatus `bson:"status"`
	RegisteredAt      time.Time            `bson:"registered_at"`
	Metadata          map[string]any       `bson:"metadata,omitempty"`
}

func toTrainerDoc(t *domain.Trainer) trainerDoc {
	return trainerDoc{
		FullName:          t.FullName,
		Email:             t.Email,
		Phone:             t.Phone,
		Category:          t.Category,
		Experience:        t.Experience,
		Location:          t.Location,
		Bio:               t.Bio,
		ProfilePictureURL: t.ProfilePictureURL,
		Status:            t.Status,
		RegisteredAt:      t.RegisteredAt.UTC(),
		Metadata:          t.Metadata,
	}
}

func (d trainerDoc) toDomain() *domain.Trainer {
	meta := d.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	return &domain.Trainer{
		ID:                d.ID.Hex(),
		FullName:          d.FullName,
		Email:             d.Email,
		Phone:             d.Phone,
		Category:          d.Category,
		Experience:        d.Experience,
		Location:          d.Location,
		Bio:               d.Bio,
		ProfilePictureURL: d.ProfilePictureURL,
		Status:            d.Status,
		RegisteredAt:      d.RegisteredAt.UTC(),
		Metadata:          meta,
	}
}

// Insert writes a new trainer document. The unique index on email turns a
// duplicate registration into domain.ErrDuplicateTrainer at write time.
func (r *TrainerRepository) Insert(ctx context.Context, t *domain.Trainer) (*domain.Trainer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toTrainerDoc(t))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateTrainer
		}
		return nil, err
	}

	created := *t
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *TrainerRepository) FindByID(ctx context.Context, id string) (*domain.Trainer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTrainerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc trainerDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTrainerNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *TrainerRepository) FindByEmail(ctx context.Context, email string) (*domain.Trainer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc trainerDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTrainerNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// List returns one page of trainers, newest registrations first, plus the
// total collection count.
func (r *TrainerRepository) List(ctx context.Context, page, limit int) ([]*domain.Trainer, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "registered_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	trainers := make([]*domain.Trainer, 0, limit)
	for cur.Next(ctx) {
		var doc trainerDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, err
		}
		trainers = append(trainers, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return trainers, total, nil
}

func (r *TrainerRepository) UpdateStatus(ctx context.Context, id string, status domain.TrainerStatus) (*domain.Trainer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTrainerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc trainerDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTrainerNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *TrainerRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTrainerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrTrainerNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index the duplicate checks rely on.
func (r *TrainerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "registered_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
