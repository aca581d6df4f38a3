package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/localekit/localization-system/internal/core/domain"
)

const collectionAPIKeys = "api_keys"

type APIKeyRepository struct {
	col *mongo.Collection
}

func NewAPIKeyRepository(db *mongo.Database) *APIKeyRepository {
	return &APIKeyRepository{col: db.Collection(collectionAPIKeys)}
}

func (r *APIKeyRepository) Create(ctx context.Context, k *domain.APIKey) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, k)
	return err
}

func (r *APIKeyRepository) FindByID(ctx context.Context, projectID, id string) (*domain.APIKey, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var k domain.APIKey
	err := r.col.FindOne(ctx, bson.M{"_id": id, "project_id": projectID}).Decode(&k)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAPIKeyNotFound
		}
		return nil, err
	}
	return &k, nil
}

// FindByHash resolves a key by token digest, revoked or not. The caller
// decides what revocation means; the repository just reports the record.
func (r *APIKeyRepository) FindByHash(ctx context.Context, tokenHash string) (*domain.APIKey, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var k domain.APIKey
	err := r.col.FindOne(ctx, bson.M{"token_hash": tokenHash}).Decode(&k)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAPIKeyNotFound
		}
		return nil, err
	}
	return &k, nil
}

func (r *APIKeyRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.APIKey, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	var keys []*domain.APIKey
	if err := cur.All(ctx, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// Revoke stamps the key. Revoking an already-revoked key matches and leaves
// the original timestamp, so revocation is idempotent and permanent.
func (r *APIKeyRepository) Revoke(ctx context.Context, projectID, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "project_id": projectID, "revoked_at": nil},
		bson.M{"$set": bson.M{"revoked_at": at}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either unknown or already revoked; distinguish for the caller.
		count, err := r.col.CountDocuments(ctx, bson.M{"_id": id, "project_id": projectID})
		if err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrAPIKeyNotFound
		}
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the api_keys collection.
func (r *APIKeyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "token_hash", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "project_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
