package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/localekit/localization-system/internal/core/domain"
)

const collectionMemberships = "memberships"

type MembershipRepository struct {
	col *mongo.Collection
}

func NewMembershipRepository(db *mongo.Database) *MembershipRepository {
	return &MembershipRepository{col: db.Collection(collectionMemberships)}
}

// Create inserts a membership row. A second row for the same (project, user)
// surfaces as domain.ErrMemberExists via the unique compound index.
func (r *MembershipRepository) Create(ctx context.Context, m *domain.ProjectUser) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrMemberExists
		}
		return err
	}
	return nil
}

func (r *MembershipRepository) Find(ctx context.Context, projectID, userID string) (*domain.ProjectUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.ProjectUser
	err := r.col.FindOne(ctx, bson.M{"project_id": projectID, "user_id": userID}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MembershipRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.ProjectUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	var members []*domain.ProjectUser
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// UpdateRole replaces role and locale assignment in a single write, so a
// promotion to admin clears any restriction atomically.
func (r *MembershipRepository) UpdateRole(ctx context.Context, projectID, userID, role string, locales []string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"project_id": projectID, "user_id": userID},
		bson.M{"$set": bson.M{
			"role":       role,
			"locales":    locales,
			"updated_at": time.Now().UTC(),
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *MembershipRepository) Delete(ctx context.Context, projectID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"project_id": projectID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the memberships collection.
func (r *MembershipRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "user_id", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
