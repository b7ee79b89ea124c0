package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hangman-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hangman-backend/internal/adapter/postgres/vocab"
	"github.com/heartmarshall/hangman-backend/internal/config"
	"github.com/heartmarshall/hangman-backend/internal/lexicon"
	"github.com/heartmarshall/hangman-backend/internal/lexicon/wordnet"
)

// LoadLexicon loads the vocabulary from the configured source. For the
// postgres source it also returns the open pool; the caller closes it.
func LoadLexicon(ctx context.Context, logger *slog.Logger, cfg *config.Config) (*lexicon.Lexicon, *pgxpool.Pool, error) {
	start := time.Now()

	switch cfg.Lexicon.Source {
	case config.LexiconSourceWordNet:
		lex, stats, err := wordnet.Parse(ctx, cfg.Lexicon.WordNetPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load wordnet lexicon: %w", err)
		}
		logger.Info("lexicon loaded",
			slog.String("source", config.LexiconSourceWordNet),
			slog.String("path", cfg.Lexicon.WordNetPath),
			slog.Int("words", lex.Len()),
			slog.Int("senses", lex.SenseCount()),
			slog.Int("synsets", stats.TotalSynsets),
			slog.Int("unknown_synsets", stats.UnknownSynsets),
			slog.Duration("took", time.Since(start)),
		)
		return lex, nil, nil

	case config.LexiconSourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}

		repo := vocab.New(pool, postgres.NewTxManager(pool))
		lex, err := repo.Load(ctx)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("load postgres lexicon: %w", err)
		}
		logger.Info("lexicon loaded",
			slog.String("source", config.LexiconSourcePostgres),
			slog.Int("words", lex.Len()),
			slog.Int("senses", lex.SenseCount()),
			slog.Duration("took", time.Since(start)),
		)
		return lex, pool, nil

	default:
		return nil, nil, fmt.Errorf("unknown lexicon source %q", cfg.Lexicon.Source)
	}
}
