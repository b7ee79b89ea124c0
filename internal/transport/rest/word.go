package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/hangman-backend/internal/config"
	"github.com/heartmarshall/hangman-backend/internal/domain"
	"github.com/heartmarshall/hangman-backend/internal/service/wordgen"
)

type wordGenerator interface {
	Generate(ctx context.Context, length, maxAttempts int) (*wordgen.Result, error)
}

// ErrorResponse is the JSON body of every non-2xx word response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WordHandler serves GET /word.
type WordHandler struct {
	log *slog.Logger
	gen wordGenerator
	cfg config.GeneratorConfig
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(logger *slog.Logger, gen wordGenerator, cfg config.GeneratorConfig) *WordHandler {
	return &WordHandler{
		log: logger.With("handler", "word"),
		gen: gen,
		cfg: cfg,
	}
}

// Word generates one word of the requested length (?length=N, default from
// config). Input errors are 400, generator failures 500.
func (h *WordHandler) Word(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	length, err := h.parseLength(r)
	if err != nil {
		h.log.WarnContext(ctx, "invalid parameter", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "Invalid parameter: " + err.Error(),
		})
		return
	}

	if length < h.cfg.MinLength {
		verr := domain.NewValidationError("length", fmt.Sprintf("must be at least %d", h.cfg.MinLength))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Error()})
		return
	}

	h.log.InfoContext(ctx, "generating word", slog.Int("length", length))

	res, err := h.gen.Generate(ctx, length, h.cfg.MaxAttempts)
	if err != nil {
		h.log.ErrorContext(ctx, "generate word",
			slog.Int("length", length),
			slog.Bool("exhausted", errors.Is(err, wordgen.ErrExhausted)),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to generate word",
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// parseLength reads ?length. A present but empty or non-integer value is
// an error; an absent one falls back to the configured default.
func (h *WordHandler) parseLength(r *http.Request) (int, error) {
	q := r.URL.Query()
	if !q.Has("length") {
		return h.cfg.DefaultLength, nil
	}

	raw := q.Get("length")
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.NewValidationError("length", fmt.Sprintf("must be an integer, got %q", raw))
	}
	return n, nil
}
