package testhelper

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hangman-backend/internal/domain"
)

// SeedWord inserts a word and its senses in order. Returns the word id.
func SeedWord(t *testing.T, pool *pgxpool.Pool, word string, senses ...domain.Sense) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	id := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO lexicon_words (id, text, length) VALUES ($1, $2, $3)`,
		id, word, utf8.RuneCountInString(word),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	for i, s := range senses {
		_, err := pool.Exec(ctx,
			`INSERT INTO lexicon_senses (id, word_id, position, part_of_speech, definition)
			 VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), id, i, string(s.PartOfSpeech), s.Definition,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedWord insert sense: %v", err)
		}
	}

	return id
}
