package ports

import (
	"context"

	"github.com/localekit/localization-system/internal/core/domain"
)

// ActivityRepository defines persistence for the project audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, e *domain.ActivityEntry) error
	// ListByProject returns the most recent entries, newest first.
	ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.ActivityEntry, error)
}

// ActivityService persists audit entries drained from the dispatcher.
type ActivityService interface {
	Record(ctx context.Context, e domain.ActivityEntry) error
}

// ActivityRecorder is the fire-and-forget side used by mutating services.
// Implementations enqueue; persistence happens asynchronously with
// per-project ordering preserved.
type ActivityRecorder interface {
	Record(e domain.ActivityEntry)
}
