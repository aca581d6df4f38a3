package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/localekit/localization-system/internal/core/domain"
)

const collectionTerms = "terms"

type TermRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewTermRepository(db *mongo.Database) *TermRepository {
	return &TermRepository{db: db, col: db.Collection(collectionTerms)}
}

// Create inserts a new term document. A duplicate value within the project
// surfaces as domain.ErrTermExists via the unique compound index.
func (r *TermRepository) Create(ctx context.Context, t *domain.Term) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, t); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrTermExists
		}
		return err
	}
	return nil
}

func (r *TermRepository) FindByID(ctx context.Context, projectID, id string) (*domain.Term, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Term
	err := r.col.FindOne(ctx, bson.M{"_id": id, "project_id": projectID}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTermNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TermRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Term, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	var terms []*domain.Term
	if err := cur.All(ctx, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

func (r *TermRepository) UpdateValue(ctx context.Context, projectID, id, value string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "project_id": projectID},
		bson.M{"$set": bson.M{"value": value, "updated_at": time.Now().UTC()}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrTermExists
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrTermNotFound
	}
	return nil
}

// Delete removes the term and its translations.
func (r *TermRepository) Delete(ctx context.Context, projectID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "project_id": projectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrTermNotFound
	}

	_, err = r.db.Collection(collectionTranslations).DeleteMany(ctx, bson.M{"term_id": id})
	return err
}

// SetLocked writes the lock flag. Last-write-wins; re-applying the current
// state matches but modifies nothing, which is exactly the idempotence the
// lock cycle relies on.
func (r *TermRepository) SetLocked(ctx context.Context, projectID, id string, locked bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "project_id": projectID},
		bson.M{"$set": bson.M{"locked": locked, "updated_at": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrTermNotFound
	}
	return nil
}

// SetLockedAll applies the flag to every term in the project in one write and
// returns how many terms actually changed state.
func (r *TermRepository) SetLockedAll(ctx context.Context, projectID string, locked bool) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := r.col.UpdateMany(ctx,
		bson.M{"project_id": projectID, "locked": !locked},
		bson.M{"$set": bson.M{"locked": locked, "updated_at": time.Now().UTC()}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// SetLabels replaces the term's label set.
func (r *TermRepository) SetLabels(ctx context.Context, projectID, id string, labelIDs []string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "project_id": projectID},
		bson.M{"$set": bson.M{"label_ids": labelIDs, "updated_at": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrTermNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the terms collection.
func (r *TermRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "value", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "locked", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
