package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/hangman-backend/internal/config"
	"github.com/heartmarshall/hangman-backend/internal/service/wordgen"
)

type wordGeneratorMock struct {
	GenerateFunc func(ctx context.Context, length, maxAttempts int) (*wordgen.Result, error)
	calls        []int
}

func (m *wordGeneratorMock) Generate(ctx context.Context, length, maxAttempts int) (*wordgen.Result, error) {
	m.calls = append(m.calls, length)
	return m.GenerateFunc(ctx, length, maxAttempts)
}

var testGeneratorConfig = config.GeneratorConfig{
	MaxAttempts:   50,
	DefaultLength: 5,
	MinLength:     3,
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func echoGenerator() *wordGeneratorMock {
	return &wordGeneratorMock{
		GenerateFunc: func(_ context.Context, length, _ int) (*wordgen.Result, error) {
			return &wordgen.Result{
				Word:        "apple"[:min(length, 5)],
				Length:      length,
				Definitions: []string{"fruit"},
				Attempts:    1,
			}, nil
		},
	}
}

func TestWord_DefaultLength(t *testing.T) {
	t.Parallel()

	gen := echoGenerator()
	h := NewWordHandler(discardLogger(), gen, testGeneratorConfig)

	rec := httptest.NewRecorder()
	h.Word(rec, httptest.NewRequest(http.MethodGet, "/word", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, []int{5}, gen.calls)

	var res wordgen.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, wordgen.Result{Word: "apple", Length: 5, Definitions: []string{"fruit"}, Attempts: 1}, res)
}

func TestWord_PassesMaxAttempts(t *testing.T) {
	t.Parallel()

	var gotMax int
	gen := &wordGeneratorMock{
		GenerateFunc: func(_ context.Context, length, maxAttempts int) (*wordgen.Result, error) {
			gotMax = maxAttempts
			return &wordgen.Result{Word: "tree", Length: length, Definitions: []string{}, Attempts: 3}, nil
		},
	}
	h := NewWordHandler(discardLogger(), gen, testGeneratorConfig)

	rec := httptest.NewRecorder()
	h.Word(rec, httptest.NewRequest(http.MethodGet, "/word?length=4", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 50, gotMax)
	assert.Equal(t, []int{4}, gen.calls)
}

func TestWord_BadRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		wantErr string
	}{
		{"non-integer", "?length=abc", `Invalid parameter: length must be an integer, got "abc"`},
		{"empty", "?length=", `Invalid parameter: length must be an integer, got ""`},
		{"float", "?length=5.5", `Invalid parameter: length must be an integer, got "5.5"`},
		{"below minimum", "?length=2", "length must be at least 3"},
		{"zero", "?length=0", "length must be at least 3"},
		{"negative", "?length=-4", "length must be at least 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := echoGenerator()
			h := NewWordHandler(discardLogger(), gen, testGeneratorConfig)

			rec := httptest.NewRecorder()
			h.Word(rec, httptest.NewRequest(http.MethodGet, "/word"+tt.query, nil))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Empty(t, gen.calls, "generator must not run on bad input")

			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, map[string]string{"error": tt.wantErr}, body)
		})
	}
}

func TestWord_MinimumLengthAccepted(t *testing.T) {
	t.Parallel()

	gen := echoGenerator()
	h := NewWordHandler(discardLogger(), gen, testGeneratorConfig)

	rec := httptest.NewRecorder()
	h.Word(rec, httptest.NewRequest(http.MethodGet, "/word?length=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{3}, gen.calls)
}

func TestWord_GeneratorFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "no words",
			err:     &wordgen.NoWordsError{Length: 40},
			wantMsg: "No words of length 40 found in WordNet",
		},
		{
			name:    "exhausted",
			err:     &wordgen.ExhaustedError{MaxAttempts: 50, Stats: wordgen.NewFilterStats()},
			wantMsg: "Could not find a valid word after 50 attempts",
		},
		{
			name:    "cancelled",
			err:     context.Canceled,
			wantMsg: "context canceled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := &wordGeneratorMock{
				GenerateFunc: func(context.Context, int, int) (*wordgen.Result, error) {
					return nil, tt.err
				},
			}
			h := NewWordHandler(discardLogger(), gen, testGeneratorConfig)

			rec := httptest.NewRecorder()
			h.Word(rec, httptest.NewRequest(http.MethodGet, "/word?length=40", nil))

			require.Equal(t, http.StatusInternalServerError, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, "Failed to generate word", body.Error)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}
