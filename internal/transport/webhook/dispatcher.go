package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/heartmarshall/heart-approvals/internal/config"
	"github.com/heartmarshall/heart-approvals/internal/domain"
	"github.com/heartmarshall/heart-approvals/internal/metrics"
	"github.com/heartmarshall/heart-approvals/internal/service/approval"
	"github.com/heartmarshall/heart-approvals/pkg/ctxutil"
)

var (
	// ErrQueueFull is returned by Enqueue when no slot frees up in time.
	ErrQueueFull = errors.New("webhook queue full")
	// ErrStopped is returned by Enqueue after Stop.
	ErrStopped = errors.New("webhook dispatcher stopped")
)

type messageHandler interface {
	HandleMessage(ctx context.Context, ev domain.MessageEvent) error
}

type reactionHandler interface {
	HandleReaction(ctx context.Context, ev domain.ReactionEvent) (approval.Result, error)
}

// Event kinds and outcomes recorded per processed event.
const (
	kindMessage  = "message"
	kindReaction = "reaction"

	outcomeOK             = "ok"
	outcomeMalformed      = "malformed"
	outcomeMisconfigured  = "misconfigured"
	outcomeTransportError = "transport_error"
	outcomeError          = "error"
	outcomePanic          = "panic"
)

// Dispatcher processes deliveries on a bounded queue with a fixed worker pool.
// A delivery is one task: its messages run first, then its reactions, each in
// order. A failing or panicking event never stops its siblings.
type Dispatcher struct {
	messages  messageHandler
	reactions reactionHandler
	metrics   *metrics.Registry
	log       *slog.Logger

	workers        int
	enqueueTimeout time.Duration
	eventTimeout   time.Duration

	queue chan domain.Delivery
	wg    sync.WaitGroup
	start sync.Once

	mu     sync.RWMutex
	closed bool

	// base is the parent of every event context; cancelled when Stop gives up.
	base   context.Context
	cancel context.CancelFunc
}

// NewDispatcher creates a Dispatcher. Call Start before Enqueue.
func NewDispatcher(
	log *slog.Logger,
	cfg config.WebhookConfig,
	messages messageHandler,
	reactions reactionHandler,
	reg *metrics.Registry,
) *Dispatcher {
	base, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		messages:       messages,
		reactions:      reactions,
		metrics:        reg,
		log:            log.With("component", "webhook_dispatcher"),
		workers:        cfg.Workers,
		enqueueTimeout: cfg.EnqueueTimeout,
		eventTimeout:   cfg.EventTimeout,
		queue:          make(chan domain.Delivery, cfg.QueueSize),
		base:           base,
		cancel:         cancel,
	}
}

// Start launches the workers. Subsequent calls are no-ops.
func (d *Dispatcher) Start() {
	d.start.Do(func() {
		for range d.workers {
			d.wg.Add(1)
			go d.worker()
		}
		d.log.Info("dispatcher started", slog.Int("workers", d.workers), slog.Int("queue_size", cap(d.queue)))
	})
}

// Enqueue hands a delivery to the workers, waiting up to the enqueue timeout
// for a free slot.
func (d *Dispatcher) Enqueue(ctx context.Context, del domain.Delivery) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrStopped
	}

	select {
	case d.queue <- del:
		return nil
	default:
	}

	timer := time.NewTimer(d.enqueueTimeout)
	defer timer.Stop()

	select {
	case d.queue <- del:
		return nil
	case <-timer.C:
		return ErrQueueFull
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop refuses new deliveries and waits for queued ones to finish.
// When ctx expires first, in-flight events are cancelled and ctx.Err is returned.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		d.log.Info("dispatcher drained")
		return nil
	case <-ctx.Done():
		d.cancel()
		d.log.Warn("dispatcher drain interrupted", slog.Int("pending", len(d.queue)))
		return fmt.Errorf("webhook: drain: %w", ctx.Err())
	}
}

// Pending returns the number of queued deliveries.
func (d *Dispatcher) Pending() int { return len(d.queue) }

// Capacity returns the queue size.
func (d *Dispatcher) Capacity() int { return cap(d.queue) }

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for del := range d.queue {
		d.process(del)
	}
}

func (d *Dispatcher) process(del domain.Delivery) {
	ctx := ctxutil.WithDeliveryID(d.base, del.ID)
	log := d.log.With(slog.String("delivery_id", del.ID))

	for _, m := range del.Messages {
		d.run(ctx, log, kindMessage, m.MessageID, func(ctx context.Context) (string, error) {
			return outcomeOK, d.messages.HandleMessage(ctx, m)
		})
	}

	for _, r := range del.Reactions {
		d.run(ctx, log, kindReaction, r.TargetMessageID, func(ctx context.Context) (string, error) {
			res, err := d.reactions.HandleReaction(ctx, r)
			return res.Outcome.String(), err
		})
	}

	log.Debug("delivery processed",
		slog.Int("messages", len(del.Messages)),
		slog.Int("reactions", len(del.Reactions)),
		slog.Duration("lag", time.Since(del.ReceivedAt)),
	)
}

// run executes one event under its own timeout and records the outcome.
func (d *Dispatcher) run(
	ctx context.Context,
	log *slog.Logger,
	kind, messageID string,
	fn func(ctx context.Context) (string, error),
) {
	ctx, cancel := context.WithTimeout(ctx, d.eventTimeout)
	defer cancel()

	defer func() {
		if p := recover(); p != nil {
			d.metrics.Event(kind, outcomePanic)
			log.ErrorContext(ctx, "event panicked",
				slog.String("kind", kind),
				slog.String("message_id", messageID),
				slog.Any("panic", p),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	outcome, err := fn(ctx)
	if err == nil {
		if outcome == "" {
			outcome = outcomeOK
		}
		d.metrics.Event(kind, outcome)
		return
	}

	outcome, level := classify(err)
	d.metrics.Event(kind, outcome)
	log.Log(ctx, level, "event failed",
		slog.String("kind", kind),
		slog.String("message_id", messageID),
		slog.String("outcome", outcome),
		slog.String("error", err.Error()),
	)
}

// classify maps an event error onto its outcome label and log level.
func classify(err error) (string, slog.Level) {
	switch {
	case errors.Is(err, domain.ErrMalformedEvent):
		return outcomeMalformed, slog.LevelWarn
	case errors.Is(err, domain.ErrGroupNotConfigured):
		return outcomeMisconfigured, slog.LevelWarn
	case errors.Is(err, domain.ErrTransport):
		return outcomeTransportError, slog.LevelError
	default:
		return outcomeError, slog.LevelError
	}
}
