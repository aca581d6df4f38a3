package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/localekit/localization-system/internal/core/domain"
)

const collectionLocales = "locales"

type LocaleRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewLocaleRepository(db *mongo.Database) *LocaleRepository {
	return &LocaleRepository{db: db, col: db.Collection(collectionLocales)}
}

// Add inserts a locale. A duplicate code within the project surfaces as
// domain.ErrLocaleExists via the unique compound index.
func (r *LocaleRepository) Add(ctx context.Context, l *domain.Locale) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, l); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrLocaleExists
		}
		return err
	}
	return nil
}

func (r *LocaleRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Locale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	var locales []*domain.Locale
	if err := cur.All(ctx, &locales); err != nil {
		return nil, err
	}
	return locales, nil
}

func (r *LocaleRepository) Exists(ctx context.Context, projectID, code string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.col.FindOne(ctx, bson.M{"project_id": projectID, "code": code}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Delete removes the locale and every translation stored for it.
func (r *LocaleRepository) Delete(ctx context.Context, projectID, code string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"project_id": projectID, "code": code})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrLocaleNotFound
	}

	_, err = r.db.Collection(collectionTranslations).DeleteMany(ctx,
		bson.M{"project_id": projectID, "locale": code})
	return err
}

// EnsureIndexes creates necessary indexes on the locales collection.
func (r *LocaleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "code", Value: 1}}, Options: uniqueIndex()},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
