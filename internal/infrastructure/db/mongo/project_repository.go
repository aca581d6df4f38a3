package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/localekit/localization-system/internal/core/domain"
)

const collectionProjects = "projects"

type ProjectRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

// NewProjectRepository keeps the database handle because project deletion
// cascades across every project-scoped collection.
func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{db: db, col: db.Collection(collectionProjects)}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Project
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListForUser returns every project the user owns or is a member of.
func (r *ProjectRepository) ListForUser(ctx context.Context, userID string) ([]*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	memberships := r.db.Collection(collectionMemberships)
	cur, err := memberships.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var rows []domain.ProjectUser
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, m := range rows {
		ids = append(ids, m.ProjectID)
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"owner_id": userID},
		bson.M{"_id": bson.M{"$in": ids}},
	}}

	pcur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var projects []*domain.Project
	if err := pcur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) UpdateName(ctx context.Context, id, name string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"name":       name,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// Delete removes the project document and everything scoped to it. The
// cascade is best-effort sequential; a partially deleted project is retried
// safely because every step filters on project_id.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}

	scoped := []string{
		collectionTerms,
		collectionTranslations,
		collectionLocales,
		collectionLabels,
		collectionMemberships,
		collectionAPIKeys,
		collectionActivity,
	}
	for _, name := range scoped {
		if _, err := r.db.Collection(name).DeleteMany(ctx, bson.M{"project_id": id}); err != nil {
			return err
		}
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the projects collection.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
