// Package seeder loads an Open English WordNet release into the lexicon
// store used by the word generator.
package seeder

import (
	"context"

	"github.com/heartmarshall/hangman-backend/internal/lexicon"
)

// LexiconStore is the write side of the lexicon store consumed by the
// pipeline. Implemented by vocab.Repo.
type LexiconStore interface {
	// Replace swaps the stored lexicon for lex in one transaction and
	// returns the number of words written.
	Replace(ctx context.Context, lex *lexicon.Lexicon, batchSize int) (int, error)
	Count(ctx context.Context) (int, error)
}

// Migrator brings the database schema up to date.
type Migrator func(ctx context.Context) error
