package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/orderdesk/backoffice/internal/domain/model"
)

// NotificationFacade exposes the subset of application functionality required by the worker.
type NotificationFacade interface {
	FailedNotifications(ctx context.Context, limit int) ([]model.Notification, error)
	RedeliverNotification(ctx context.Context, n model.Notification) error
}

// Redeliverer periodically picks up failed notifications and retries
// their delivery concurrently. With a zero poll interval the worker is
// inert: Start and Stop become no-ops and failed notifications stay
// put until a staff member redelivers them by hand.
type Redeliverer struct {
	facade       NotificationFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewRedeliverer constructs notification redelivery worker pool.
func NewRedeliverer(facade NotificationFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *Redeliverer {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Redeliverer{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Notification, batchSize*workers),
	}
}

// Start launches background processing. Disabled when the poll
// interval is zero.
func (r *Redeliverer) Start(ctx context.Context) {
	if r.pollInterval <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// The start context only covers the startup phase and is cancelled
	// once it completes; the loop must outlive it. Stop is the only
	// signal that terminates the pool.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (r *Redeliverer) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Redeliverer) dispatch(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.jobs)
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx)
		}
	}
}

func (r *Redeliverer) fetchAndDispatch(ctx context.Context) {
	notifications, err := r.facade.FailedNotifications(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("fetch failed notifications", slog.String("error", err.Error()))
		return
	}
	for _, n := range notifications {
		select {
		case <-ctx.Done():
			return
		case r.jobs <- n:
		}
	}
}

func (r *Redeliverer) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-r.jobs:
			if !ok {
				return
			}
			if err := r.facade.RedeliverNotification(ctx, n); err != nil {
				r.logger.Error("notification redelivery failed",
					slog.Int64("notification_id", n.ID),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
