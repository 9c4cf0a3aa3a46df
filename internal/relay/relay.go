package relay

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/supplier-ledger/internal/adapter"
	"github.com/feral-file/supplier-ledger/internal/domain"
	"github.com/feral-file/supplier-ledger/internal/logger"
	"github.com/feral-file/supplier-ledger/internal/messaging"
	"github.com/feral-file/supplier-ledger/internal/store"
	"github.com/feral-file/supplier-ledger/internal/store/schema"
)

// Config holds the outbox relay configuration
type Config struct {
	// PollInterval is how long to wait when the outbox is empty
	PollInterval time.Duration
	// BatchSize is the maximum number of outbox rows fetched per cycle
	BatchSize int
	// WorkerPoolSize is the number of concurrent publish workers
	WorkerPoolSize int
}

// Relay drains the claim outbox to the message broker. Rows are published at
// least once: a row is only marked published after the broker acknowledges it,
// so a crash between publish and mark replays the event.
type Relay interface {
	// Start begins the relay's main loop; blocks until stopped
	Start(ctx context.Context) error
	// Stop gracefully stops the relay
	Stop(ctx context.Context) error
}

type claimRelay struct {
	config    Config
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewClaimRelay creates a new claim outbox relay
func NewClaimRelay(
	config Config,
	st store.Store,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Relay {
	return &claimRelay{
		config:    config,
		store:     st,
		publisher: publisher,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Start begins the relay's main loop, draining the outbox in batches
func (r *claimRelay) Start(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return fmt.Errorf("relay already running")
	}
	defer func() {
		r.running.Store(false)
		close(r.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting claim outbox relay",
		zap.Int("batch_size", r.config.BatchSize),
		zap.Int("worker_pool_size", r.config.WorkerPoolSize),
		zap.Duration("poll_interval", r.config.PollInterval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Claim relay stopping due to context cancellation", zap.Error(ctx.Err()))
			r.cleanup()
			return nil
		case <-r.stopChan:
			logger.InfoCtx(ctx, "Claim relay stop requested")
			r.cleanup()
			return nil
		default:
			if err := r.runRelayCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for in-flight publishes
func (r *claimRelay) cleanup() {
	if r.pool != nil {
		r.pool.StopAndWait()
		r.pool = nil
	}
	r.publisher.Close()
}

// Stop gracefully stops the relay with timeout support
func (r *claimRelay) Stop(ctx context.Context) error {
	if !r.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping claim relay")

	close(r.stopChan)

	select {
	case <-r.stoppedCh:
		logger.InfoCtx(ctx, "Claim relay stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Claim relay stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runRelayCycle fetches one batch of unpublished events and fans them out
func (r *claimRelay) runRelayCycle(ctx context.Context) error {
	events, err := r.store.GetUnpublishedClaimEvents(ctx, r.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to get unpublished claim events: %w", err)
	}

	if len(events) == 0 {
		if !r.sleep(ctx, r.config.PollInterval) {
			return ctx.Err()
		}
		return nil
	}

	logger.DebugCtx(ctx, "Found unpublished claim events", zap.Int("count", len(events)))

	r.pool = pond.NewPool(
		r.config.WorkerPoolSize,
		pond.WithQueueSize(r.config.BatchSize),
		pond.WithContext(ctx),
	)

	var publishedCount, failedCount atomic.Int32

	for _, event := range events {
		r.pool.Submit(func() {
			if err := r.relayEvent(ctx, event); err != nil {
				failedCount.Add(1)
				logger.ErrorCtx(ctx, err, zap.String("outbox_id", event.ID))
				return
			}
			publishedCount.Add(1)
		})
	}

	r.pool.StopAndWait()
	r.pool = nil

	logger.InfoCtx(ctx, "Relay cycle completed",
		zap.Int("total", len(events)),
		zap.Int32("published", publishedCount.Load()),
		zap.Int32("failed", failedCount.Load()),
	)

	return nil
}

// relayEvent publishes a single outbox row with retry and marks it on success
func (r *claimRelay) relayEvent(ctx context.Context, event schema.ClaimOutbox) error {
	claimed := &domain.ClaimedEvent{
		Supplier:      event.SupplierAddress,
		Timestamp:     event.ClaimedAt,
		Value:         event.Value,
		TransactionID: event.ClaimID,
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = time.Minute

	operation := func() error {
		if !claimed.Valid() {
			// Malformed rows never become publishable; surface and stop retrying
			return backoff.Permanent(fmt.Errorf("malformed outbox row %s", event.ID))
		}
		return r.publisher.PublishClaimed(ctx, claimed)
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("failed to publish claim event: %w", err)
	}

	if err := r.store.MarkClaimEventPublished(ctx, event.ID, r.clock.Now().UTC()); err != nil {
		// The event is already on the broker; the next cycle republishes it,
		// which consumers must tolerate (at-least-once delivery)
		return fmt.Errorf("failed to mark claim event published: %w", err)
	}

	return nil
}

// sleep waits for the given duration, returning false if the context is canceled
func (r *claimRelay) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-r.stopChan:
		return false
	case <-r.clock.After(d):
		return true
	}
}
