package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/localekit/localization-system/internal/core/domain"
	"github.com/localekit/localization-system/internal/core/ports"
	"github.com/localekit/localization-system/internal/metrics"
)

const (
	defaultWorkers = 4
	defaultBuffer  = 256
)

// Dispatcher routes audit entries to a fixed set of workers using consistent
// hashing on the project ID, guaranteeing per-project ordering in the
// activity trail. Enqueue never blocks a request handler: when a worker's
// buffer is full the entry is dropped and counted.
type Dispatcher struct {
	workers []chan domain.ActivityEntry
	service ports.ActivityService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// Non-positive arguments fall back to defaults.
func NewDispatcher(numWorkers, buffer int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	d := &Dispatcher{
		workers: make([]chan domain.ActivityEntry, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ActivityEntry, buffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record implements ports.ActivityRecorder. The audit trail is advisory:
// dropping under backpressure is preferred over stalling mutations.
func (d *Dispatcher) Record(e domain.ActivityEntry) {
	idx := d.shardIndex(e.ProjectID)
	select {
	case d.workers[idx] <- e:
		metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.ActivityDroppedTotal.Inc()
		d.log.Warn().
			Str("project_id", e.ProjectID).
			Str("action", e.Action).
			Int("worker_id", idx).
			Msg("activity entry dropped, worker queue full")
	}
}

// shardIndex maps a project ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(projectID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(projectID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ActivityEntry) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			metrics.ActivityQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.service.Record(ctx, entry); err != nil {
				d.log.Error().Err(err).
					Str("project_id", entry.ProjectID).
					Str("action", entry.Action).
					Int("worker_id", id).
					Msg("activity write failed")
			}
		}
	}
}
