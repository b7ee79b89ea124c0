package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "hangman-word-generator"

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// lexiconSizer reports the size of the loaded vocabulary.
type lexiconSizer interface {
	Len() int
	SenseCount() int
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	lexicon lexiconSizer
	version string
}

// NewHealthHandler creates a HealthHandler. db may be nil when the lexicon
// was not loaded from a database.
func NewHealthHandler(db dbPinger, lexicon lexiconSizer, version string) *HealthHandler {
	return &HealthHandler{db: db, lexicon: lexicon, version: version}
}

// HealthResponse is the JSON response for /health, /live and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Service    string                `json:"service,omitempty"`
	Version    string                `json:"version,omitempty"`
	Lexicon    *LexiconStatus        `json:"lexicon,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// LexiconStatus summarises the vocabulary the generator samples from.
type LexiconStatus struct {
	Words  int `json:"words"`
	Senses int `json:"senses"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 503 while the lexicon is empty or the
// database (when configured) does not answer.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ready := h.lexicon.Len() > 0
	if ready && h.db != nil {
		ready = h.db.Ping(ctx) == nil
	}

	if !ready {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with lexicon size, version and, when a
// database is configured, its ping latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "healthy"

	if h.lexicon.Len() == 0 {
		components["lexicon"] = CompStatus{Status: "down"}
		overallStatus = "unhealthy"
	} else {
		components["lexicon"] = CompStatus{Status: "ok"}
	}

	if h.db != nil {
		start := time.Now()
		err := h.db.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components["database"] = CompStatus{Status: "down"}
			overallStatus = "unhealthy"
		} else {
			components["database"] = CompStatus{
				Status:  "ok",
				Latency: latency.String(),
			}
		}
	}

	status := http.StatusOK
	if overallStatus != "healthy" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:  overallStatus,
		Service: ServiceName,
		Version: h.version,
		Lexicon: &LexiconStatus{
			Words:  h.lexicon.Len(),
			Senses: h.lexicon.SenseCount(),
		},
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
