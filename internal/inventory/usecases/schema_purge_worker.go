package usecases

import (
	"context"
	"fmt"
	"inventory-server/internal/infra/async"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// NewSchemaPurgeWorker builds a worker that hard deletes schemas soft deleted
// longer than retention ago. The cron schedule is evaluated on every tick.
func NewSchemaPurgeWorker(
	ticker *time.Ticker,
	schedule string,
	retention time.Duration,
	schemas SchemaStore,
) (*SchemaPurgeWorker, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	parsed, err := parser.Parse(schedule)
	if err != nil {
		return nil, fmt.Errorf("parsing purge schedule %q: %w", schedule, err)
	}

	return &SchemaPurgeWorker{
		ticker:    ticker,
		schedule:  parsed,
		retention: retention,
		schemas:   schemas,
		now:       time.Now,
		stop:      make(chan struct{}),
	}, nil
}

var _ async.Worker = (*SchemaPurgeWorker)(nil)

type SchemaPurgeWorker struct {
	ticker    *time.Ticker
	schedule  cron.Schedule
	retention time.Duration
	schemas   SchemaStore
	now       func() time.Time
	next      time.Time
	stop      chan struct{}
	stopOnce  sync.Once
}

func (w *SchemaPurgeWorker) Run(ctx context.Context, done func()) {
	slog.Info("schema purge worker started")
	defer done()

	w.next = w.schedule.Next(w.now())
	for {
		select {
		case <-ctx.Done():
			slog.Info("schema purge worker cancelled")
			return
		case <-w.stop:
			slog.Info("schema purge worker stopped")
			return
		case <-w.ticker.C:
			now := w.now()
			if now.Before(w.next) {
				continue
			}
			w.next = w.schedule.Next(now)

			if _, err := w.Purge(ctx); err != nil {
				slog.Error("purging deleted schemas", slog.String("error", err.Error()))
			}
		}
	}
}

func (w *SchemaPurgeWorker) Shutdown() {
	w.stopOnce.Do(func() {
		close(w.stop)
	})
}

// Purge hard deletes every schema whose deletion is older than the retention
// window, together with its property values. It returns how many were removed.
func (w *SchemaPurgeWorker) Purge(ctx context.Context) (int, error) {
	cutoff := w.now().Add(-w.retention)

	expired, err := w.schemas.FindDeletedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("finding expired schemas: %w", err)
	}

	if len(expired) == 0 {
		return 0, nil
	}

	ids := make([]shareddomain.ID, len(expired))
	for i, schema := range expired {
		ids[i] = schema.ID
	}

	if err := w.schemas.ForceDeleteMany(ctx, ids); err != nil {
		return 0, fmt.Errorf("purging expired schemas: %w", err)
	}

	slog.Info("expired schemas purged",
		slog.Int("count", len(ids)),
		slog.Time("cutoff", cutoff),
	)
	return len(ids), nil
}
