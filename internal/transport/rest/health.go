package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

const (
	statusOK       = "ok"
	statusDown     = "down"
	statusDegraded = "degraded"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// queueGauge reports the webhook backlog.
type queueGauge interface {
	Pending() int
	Capacity() int
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	queue   queueGauge
	version string
}

// NewHealthHandler creates a HealthHandler. queue may be nil.
func NewHealthHandler(db dbPinger, queue queueGauge, version string) *HealthHandler {
	return &HealthHandler{db: db, queue: queue, version: version}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	respond(w, HealthResponse{Status: statusOK})
}

// Ready answers 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	respond(w, HealthResponse{Status: h.checkDatabase(r.Context()).Status})
}

// Health reports every dependency with the build version. Only the database
// decides the overall status; a full webhook queue shows as degraded.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())
	components := map[string]CompStatus{"database": db}
	if h.queue != nil {
		components["webhook_queue"] = h.checkQueue()
	}

	respond(w, HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: components,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown, Detail: err.Error()}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}

func (h *HealthHandler) checkQueue() CompStatus {
	pending, capacity := h.queue.Pending(), h.queue.Capacity()
	cs := CompStatus{Status: statusOK, Detail: fmt.Sprintf("%d/%d", pending, capacity)}
	if capacity > 0 && pending >= capacity {
		cs.Status = statusDegraded
	}
	return cs
}

// respond stamps the response and maps a down status onto 503.
func respond(w http.ResponseWriter, resp HealthResponse) {
	code := http.StatusOK
	if resp.Status == statusDown {
		code = http.StatusServiceUnavailable
	}
	resp.Timestamp = time.Now()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp) //nolint:errcheck
}
