// Package vocab persists the word lexicon in PostgreSQL and loads it back
// into memory. Two tables: lexicon_words and lexicon_senses (ordered by
// position within a word).
package vocab

import (
	"context"
	"fmt"
	"unicode/utf8"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/hangman-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hangman-backend/internal/domain"
	"github.com/heartmarshall/hangman-backend/internal/lexicon"
)

const (
	tableWords  = "lexicon_words"
	tableSenses = "lexicon_senses"

	defaultBatchSize = 500

	// PostgreSQL caps bind parameters per statement.
	maxBindParams   = 65535
	sensesPerInsert = maxBindParams / 5
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repo provides lexicon persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	txm txManager
}

// New creates a new lexicon repository.
func New(db postgres.Querier, txm txManager) *Repo {
	return &Repo{db: db, txm: txm}
}

// senseRow is one word/sense pair; the sense columns are NULL for words
// without senses.
type senseRow struct {
	Word         string  `db:"word"`
	PartOfSpeech *string `db:"part_of_speech"`
	Definition   *string `db:"definition"`
}

// Load reads the whole lexicon into memory, preserving sense order.
func (r *Repo) Load(ctx context.Context) (*lexicon.Lexicon, error) {
	query, args, err := psql.
		Select("w.text AS word", "s.part_of_speech", "s.definition").
		From(tableWords + " w").
		LeftJoin(tableSenses + " s ON s.word_id = w.id").
		OrderBy("w.text", "s.position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load query: %w", err)
	}

	var rows []senseRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "lexicon", "")
	}

	b := lexicon.NewBuilder()
	for _, row := range rows {
		if row.PartOfSpeech == nil || row.Definition == nil {
			b.Add(row.Word)
			continue
		}
		b.Add(row.Word, domain.Sense{
			PartOfSpeech: domain.ParsePartOfSpeech(*row.PartOfSpeech),
			Definition:   *row.Definition,
		})
	}
	return b.Build(), nil
}

// Count returns the number of stored words.
func (r *Repo) Count(ctx context.Context) (int, error) {
	return r.count(ctx, psql.Select("count(*)").From(tableWords))
}

// CountByLength returns the number of stored words with the given length.
func (r *Repo) CountByLength(ctx context.Context, length int) (int, error) {
	return r.count(ctx, psql.Select("count(*)").From(tableWords).Where(sq.Eq{"length": length}))
}

func (r *Repo) count(ctx context.Context, b sq.SelectBuilder) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "lexicon", "")
	}
	return n, nil
}

// Replace swaps the stored lexicon for lex in a single transaction and
// returns the number of words written. Words are inserted batchSize at a
// time; each batch is one round trip carrying a words insert and a senses
// insert.
func (r *Repo) Replace(ctx context.Context, lex *lexicon.Lexicon, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	var inserted int
	err := r.txm.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		if _, err := q.Exec(ctx, "TRUNCATE "+tableSenses+", "+tableWords); err != nil {
			return postgres.MapError(err, "lexicon", "")
		}

		chunk := make([]string, 0, batchSize)
		flush := func() error {
			n, err := r.insertChunk(ctx, q, lex, chunk)
			inserted += n
			chunk = chunk[:0]
			return err
		}

		for word := range lex.Words() {
			chunk = append(chunk, word)
			if len(chunk) == batchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		if len(chunk) > 0 {
			return flush()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// insertChunk writes words and their senses with one pgx.Batch.
func (r *Repo) insertChunk(ctx context.Context, q postgres.Querier, lex *lexicon.Lexicon, words []string) (int, error) {
	batch := &pgx.Batch{}
	for _, b := range chunkInserts(lex, words, sensesPerInsert) {
		if err := queue(batch, b); err != nil {
			return 0, err
		}
	}

	if err := sendBatchExec(ctx, q, batch); err != nil {
		return 0, postgres.MapError(err, "lexicon_word", words[0])
	}
	return len(words), nil
}

// chunkInserts returns the words insert followed by as many senses inserts
// as needed to keep each under maxRows rows.
func chunkInserts(lex *lexicon.Lexicon, words []string, maxRows int) []sq.InsertBuilder {
	wordsInsert := psql.Insert(tableWords).Columns("id", "text", "length")
	var sensesInserts []sq.InsertBuilder
	rows := 0

	for _, w := range words {
		id := uuid.New()
		wordsInsert = wordsInsert.Values(id, w, utf8.RuneCountInString(w))
		for i, s := range lex.Senses(w) {
			if rows%maxRows == 0 {
				sensesInserts = append(sensesInserts,
					psql.Insert(tableSenses).Columns("id", "word_id", "position", "part_of_speech", "definition"))
			}
			last := len(sensesInserts) - 1
			sensesInserts[last] = sensesInserts[last].Values(uuid.New(), id, i, string(s.PartOfSpeech), s.Definition)
			rows++
		}
	}

	return append([]sq.InsertBuilder{wordsInsert}, sensesInserts...)
}

func queue(batch *pgx.Batch, b sq.InsertBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	batch.Queue(query, args...)
	return nil
}

// sendBatchExec sends a batch and checks every queued statement.
func sendBatchExec(ctx context.Context, q postgres.Querier, batch *pgx.Batch) error {
	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for range batch.Len() {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return br.Close()
}
