package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/localekit/localization-system/internal/core/domain"
)

const collectionLabels = "labels"

type LabelRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewLabelRepository(db *mongo.Database) *LabelRepository {
	return &LabelRepository{db: db, col: db.Collection(collectionLabels)}
}

// Create inserts a label. A duplicate name within the project surfaces as
// domain.ErrLabelExists via the unique compound index.
func (r *LabelRepository) Create(ctx context.Context, l *domain.Label) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, l); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrLabelExists
		}
		return err
	}
	return nil
}

func (r *LabelRepository) FindByID(ctx context.Context, projectID, id string) (*domain.Label, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var l domain.Label
	err := r.col.FindOne(ctx, bson.M{"_id": id, "project_id": projectID}).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLabelNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *LabelRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Label, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	var labels []*domain.Label
	if err := cur.All(ctx, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *LabelRepository) Update(ctx context.Context, projectID, id, name, color string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "project_id": projectID},
		bson.M{"$set": bson.M{"name": name, "color": color}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrLabelExists
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrLabelNotFound
	}
	return nil
}

// Delete removes the label and detaches it from every term carrying it.
func (r *LabelRepository) Delete(ctx context.Context, projectID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "project_id": projectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrLabelNotFound
	}

	_, err = r.db.Collection(collectionTerms).UpdateMany(ctx,
		bson.M{"project_id": projectID, "label_ids": id},
		bson.M{"$pull": bson.M{"label_ids": id}})
	return err
}

// EnsureIndexes creates necessary indexes on the labels collection.
func (r *LabelRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "name", Value: 1}}, Options: uniqueIndex()},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
