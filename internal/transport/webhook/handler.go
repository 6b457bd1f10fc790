// Package webhook receives Cloud API webhooks and processes their events
// asynchronously.
package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/heart-approvals/internal/domain"
	"github.com/heartmarshall/heart-approvals/internal/metrics"
	"github.com/heartmarshall/heart-approvals/pkg/ctxutil"
)

type enqueuer interface {
	Enqueue(ctx context.Context, d domain.Delivery) error
}

// Delivery results recorded by Receive.
const (
	resultAccepted = "accepted"
	resultEmpty    = "empty"
	resultDropped  = "dropped"
	resultInvalid  = "invalid"
)

// Handler serves GET and POST /webhook.
type Handler struct {
	verifyToken  string
	maxBodyBytes int64
	queue        enqueuer
	metrics      *metrics.Registry
	log          *slog.Logger
	now          func() time.Time
}

// NewHandler creates a Handler.
func NewHandler(log *slog.Logger, verifyToken string, maxBodyBytes int64, queue enqueuer, reg *metrics.Registry) *Handler {
	return &Handler{
		verifyToken:  verifyToken,
		maxBodyBytes: maxBodyBytes,
		queue:        queue,
		metrics:      reg,
		log:          log.With("handler", "webhook"),
		now:          time.Now,
	}
}

// Verify answers the subscription handshake: the challenge is echoed back
// when hub.mode is "subscribe" and hub.verify_token matches; otherwise 403.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("hub.mode") != "subscribe" || !h.tokenMatches(q.Get("hub.verify_token")) {
		h.log.WarnContext(r.Context(), "webhook verification rejected", slog.String("mode", q.Get("hub.mode")))
		w.WriteHeader(http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, q.Get("hub.challenge")) //nolint:errcheck
}

func (h *Handler) tokenMatches(token string) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.verifyToken)) == 1
}

// Receive accepts an event delivery. It always answers 200: processing
// happens on the dispatcher and its outcome never reaches the sender.
func (h *Handler) Receive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	deliveryID := uuid.NewString()
	ctx = ctxutil.WithDeliveryID(ctx, deliveryID)
	log := h.log.With(
		slog.String("delivery_id", deliveryID),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	)

	defer w.WriteHeader(http.StatusOK)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.WarnContext(ctx, "webhook body too large", slog.Int64("limit", tooLarge.Limit))
		} else {
			log.WarnContext(ctx, "webhook body unreadable", slog.String("error", err.Error()))
		}
		h.metrics.Delivery(resultInvalid)
		return
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		log.WarnContext(ctx, "webhook body is not a valid envelope", slog.String("error", err.Error()))
		h.metrics.Delivery(resultInvalid)
		return
	}

	delivery := env.toDelivery(deliveryID, h.now())
	if delivery.Empty() {
		log.DebugContext(ctx, "webhook delivery without events", slog.String("object", env.Object))
		h.metrics.Delivery(resultEmpty)
		return
	}

	if err := h.queue.Enqueue(ctx, delivery); err != nil {
		log.ErrorContext(ctx, "webhook delivery dropped",
			slog.Int("messages", len(delivery.Messages)),
			slog.Int("reactions", len(delivery.Reactions)),
			slog.String("error", err.Error()),
		)
		h.metrics.Delivery(resultDropped)
		return
	}

	h.metrics.Delivery(resultAccepted)
	log.DebugContext(ctx, "webhook delivery accepted",
		slog.Int("messages", len(delivery.Messages)),
		slog.Int("reactions", len(delivery.Reactions)),
	)
}
