package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes for every collection. Run once at
// startup, before serving traffic: the unique indexes are load-bearing for
// correctness (duplicate detection, atomic translation upserts), not just
// query speed.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	type indexed interface {
		EnsureIndexes(ctx context.Context) error
	}

	repos := map[string]indexed{
		collectionUsers:        NewUserRepository(db),
		collectionProjects:     NewProjectRepository(db),
		collectionTerms:        NewTermRepository(db),
		collectionTranslations: NewTranslationRepository(db),
		collectionLocales:      NewLocaleRepository(db),
		collectionLabels:       NewLabelRepository(db),
		collectionMemberships:  NewMembershipRepository(db),
		collectionAPIKeys:      NewAPIKeyRepository(db),
		collectionActivity:     NewActivityRepository(db),
	}

	for name, repo := range repos {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes %s: %w", name, err)
		}
	}
	return nil
}
