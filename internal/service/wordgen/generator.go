package wordgen

import (
	"context"
	"iter"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/patrickmn/go-cache"

	"github.com/heartmarshall/hangman-backend/internal/domain"
)

// DefaultMaxAttempts is used when Generate is called with maxAttempts <= 0.
const DefaultMaxAttempts = 1000

// Vocabulary is the word source the generator samples from.
type Vocabulary interface {
	Words() iter.Seq[string]
	Senses(word string) []domain.Sense
}

// Result is a successfully generated word.
type Result struct {
	Word        string   `json:"word"`
	Length      int      `json:"length"`
	Definitions []string `json:"definitions"`
	Attempts    int      `json:"attempts"`
}

// Generator picks random words of a given length that pass the Validator.
// The vocabulary must not change after the Generator is created.
type Generator struct {
	log       *slog.Logger
	vocab     Vocabulary
	validator *Validator
	sizes     map[int]int
	pools     *cache.Cache
	intn      func(n int) int
}

// NewGenerator creates a Generator over vocab, screening text with detector.
func NewGenerator(logger *slog.Logger, vocab Vocabulary, detector profanityDetector) *Generator {
	sizes := make(map[int]int)
	for w := range vocab.Words() {
		sizes[utf8.RuneCountInString(w)]++
	}
	return &Generator{
		log:       logger.With("service", "wordgen"),
		vocab:     vocab,
		validator: NewValidator(vocab, detector),
		sizes:     sizes,
		pools:     cache.New(cache.NoExpiration, 0),
		intn:      rand.IntN,
	}
}

// Generate draws words of the given length uniformly at random, with
// replacement, until one passes validation or maxAttempts draws are spent.
// It returns a *NoWordsError when no word has that length and an
// *ExhaustedError when every draw is rejected.
func (g *Generator) Generate(ctx context.Context, length, maxAttempts int) (*Result, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	pool := g.pool(length)
	if len(pool) == 0 {
		return nil, &NoWordsError{Length: length}
	}
	g.log.InfoContext(ctx, "candidate pool", slog.Int("length", length), slog.Int("size", len(pool)))

	stats := NewFilterStats()
	for range maxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		word := strings.ToLower(pool[g.intn(len(pool))])
		outcome := g.validator.Validate(word, length)
		stats.record(outcome)
		if !outcome.Accepted() {
			continue
		}

		res := &Result{
			Word:        strings.ToUpper(word),
			Length:      utf8.RuneCountInString(word),
			Definitions: definitions(g.vocab.Senses(word)),
			Attempts:    stats.Attempts,
		}
		g.log.InfoContext(ctx, "word generated",
			slog.String("word", res.Word),
			slog.Int("attempts", res.Attempts),
			slog.Int("definitions", len(res.Definitions)),
			slog.Any("stats", stats),
		)
		return res, nil
	}

	g.log.ErrorContext(ctx, "attempts exhausted",
		slog.Int("length", length),
		slog.Any("stats", stats),
	)
	return nil, &ExhaustedError{MaxAttempts: maxAttempts, Stats: stats}
}

// pool returns the words of the given length. Only lengths present in the
// vocabulary are built and cached, each on first use, so the cache never
// holds more entries than there are distinct word lengths.
func (g *Generator) pool(length int) []string {
	size := g.sizes[length]
	if size == 0 {
		return nil
	}

	key := strconv.Itoa(length)
	if v, ok := g.pools.Get(key); ok {
		return v.([]string)
	}

	words := make([]string, 0, size)
	for w := range g.vocab.Words() {
		if utf8.RuneCountInString(w) == length {
			words = append(words, w)
		}
	}
	g.pools.Set(key, words, cache.NoExpiration)
	return words
}

// definitions returns the non-empty definitions of senses without
// duplicates, in first-seen order.
func definitions(senses []domain.Sense) []string {
	seen := make(map[string]struct{}, len(senses))
	out := make([]string, 0, len(senses))
	for _, s := range senses {
		if s.Definition == "" {
			continue
		}
		if _, ok := seen[s.Definition]; ok {
			continue
		}
		seen[s.Definition] = struct{}{}
		out = append(out, s.Definition)
	}
	return out
}
