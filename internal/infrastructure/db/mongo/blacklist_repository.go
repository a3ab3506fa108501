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

const collectionBlacklist = "blacklisted_trainers"

type BlacklistRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewBlacklistRepository(db *mongo.Database) *BlacklistRepository {
	return &BlacklistRepository{db: db, col: db.Collection(collectionBlacklist)}
}

type blacklistDoc struct {
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

func toBlacklistDoc(e *domain.BlacklistEntry) blacklistDoc {
	return blacklistDoc{
		FullName:          e.FullName,
		Email:             e.Email,
		Phone:             e.Phone,
		Category:          e.Category,
		Experience:        e.Experience,
		Location:          e.Location,
		Bio:               e.Bio,
		ProfilePictureURL: e.ProfilePictureURL,
		Status:            e.Status,
		RegisteredAt:      e.RegisteredAt.UTC(),
		Metadata:          e.Metadata,
	}
}

func (d blacklistDoc) toDomain() *domain.BlacklistEntry {
	meta := d.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	return &domain.BlacklistEntry{
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

// Insert writes a new blacklist entry. The unique email index rejects a
// second entry for the same email with domain.ErrDuplicateBlacklist.
func (r *BlacklistRepository) Insert(ctx context.Context, e *domain.BlacklistEntry) (*domain.BlacklistEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.insert(ctx, e)
}

func (r *BlacklistRepository) insert(ctx context.Context, e *domain.BlacklistEntry) (*domain.BlacklistEntry, error) {
	res, err := r.col.InsertOne(ctx, toBlacklistDoc(e))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateBlacklist
		}
		return nil, err
	}

	created := *e
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// Migrate inserts the entry and deletes the source trainer. Against a replica
// set both writes run in one transaction; standalone servers fall back to
// sequential writes, where a failed delete is surfaced to the caller even
// though the entry already exists.
func (r *BlacklistRepository) Migrate(ctx context.Context, e *domain.BlacklistEntry, trainerID string) (*domain.BlacklistEntry, error) {
	oid, err := primitive.ObjectIDFromHex(trainerID)
	if err != nil {
		return nil, domain.ErrTrainerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	session, err := r.db.Client().StartSession()
	if err != nil {
		return r.migrateSequential(ctx, e, oid)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		created, err := r.insert(sc, e)
		if err != nil {
			return nil, err
		}
		if _, err := r.db.Collection(collectionTrainers).DeleteOne(sc, bson.M{"_id": oid}); err != nil {
			return nil, err
		}
		return created, nil
	})
	if err != nil {
		if transactionsUnsupported(err) {
			return r.migrateSequential(ctx, e, oid)
		}
		return nil, err
	}
	return result.(*domain.BlacklistEntry), nil
}

func (r *BlacklistRepository) migrateSequential(ctx context.Context, e *domain.BlacklistEntry, trainerID primitive.ObjectID) (*domain.BlacklistEntry, error) {
	created, err := r.insert(ctx, e)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.Collection(collectionTrainers).DeleteOne(ctx, bson.M{"_id": trainerID}); err != nil {
		return nil, err
	}
	return created, nil
}

// transactionsUnsupported detects the IllegalOperation the server raises when
// transactions are attempted outside a replica set or mongos.
func transactionsUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 20
	}
	return false
}

func (r *BlacklistRepository) ListAll(ctx context.Context) ([]*domain.BlacklistEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []*domain.BlacklistEntry
	for cur.Next(ctx) {
		var doc blacklistDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		entries = append(entries, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureIndexes creates the unique email index: at most one entry per email.
func (r *BlacklistRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
