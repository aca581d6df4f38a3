package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/localekit/localization-system/internal/core/domain"
)

const collectionTranslations = "translations"

type TranslationRepository struct {
	col *mongo.Collection
}

func NewTranslationRepository(db *mongo.Database) *TranslationRepository {
	return &TranslationRepository{col: db.Collection(collectionTranslations)}
}

// Upsert creates or replaces the (term, locale) value in a single atomic
// write against the unique compound index. Two concurrent first writes race
// on the index; the loser gets a duplicate-key error and is surfaced as
// domain.ErrTranslationConflict so the caller can retry into the
// now-existing row.
func (r *TranslationRepository) Upsert(ctx context.Context, tr *domain.Translation) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"term_id": tr.TermID, "locale": tr.Locale}
	update := bson.M{"$set": bson.M{
		"project_id": tr.ProjectID,
		"value":      tr.Value,
		"updated_at": tr.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, domain.ErrTranslationConflict
		}
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func (r *TranslationRepository) Find(ctx context.Context, termID, locale string) (*domain.Translation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var tr domain.Translation
	err := r.col.FindOne(ctx, bson.M{"term_id": termID, "locale": locale}).Decode(&tr)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTranslationNotFound
		}
		return nil, err
	}
	return &tr, nil
}

func (r *TranslationRepository) ListByLocale(ctx context.Context, projectID, locale string) ([]*domain.Translation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID, "locale": locale})
	if err != nil {
		return nil, err
	}
	var translations []*domain.Translation
	if err := cur.All(ctx, &translations); err != nil {
		return nil, err
	}
	return translations, nil
}

// EnsureIndexes creates necessary indexes on the translations collection.
// The unique (term_id, locale) index is what makes Upsert race-safe.
func (r *TranslationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "term_id", Value: 1}, {Key: "locale", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "locale", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
