package vocab

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"testing"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/hangman-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hangman-backend/internal/domain"
	"github.com/heartmarshall/hangman-backend/internal/lexicon"
)

func ptr(s string) *string { return &s }

func newTestRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock, postgres.NewTxManager(mock)), mock
}

func TestRepo_Load(t *testing.T) {
	t.Parallel()

	repo, mock := newTestRepo(t)
	rows := pgxmock.NewRows([]string{"word", "part_of_speech", "definition"}).
		AddRow("bank", ptr("NOUN"), ptr("sloping land")).
		AddRow("bank", ptr("VERB"), ptr("tip laterally")).
		AddRow("ghost", (*string)(nil), (*string)(nil)).
		AddRow("gush", ptr("bogus"), ptr("flow out"))
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT w.text AS word, s.part_of_speech, s.definition FROM lexicon_words w LEFT JOIN lexicon_senses s ON s.word_id = w.id ORDER BY w.text, s.position",
	)).WillReturnRows(rows)

	lex, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"bank", "ghost", "gush"}, slices.Collect(lex.Words()))
	assert.Equal(t, []domain.Sense{
		{PartOfSpeech: domain.PartOfSpeechNoun, Definition: "sloping land"},
		{PartOfSpeech: domain.PartOfSpeechVerb, Definition: "tip laterally"},
	}, lex.Senses("bank"))
	assert.True(t, lex.Contains("ghost"))
	assert.Empty(t, lex.Senses("ghost"))
	assert.Equal(t, domain.PartOfSpeechOther, lex.Senses("gush")[0].PartOfSpeech)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Load_QueryError(t *testing.T) {
	t.Parallel()

	repo, mock := newTestRepo(t)
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	lex, err := repo.Load(context.Background())
	assert.Nil(t, lex)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lexicon: ")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Load_ContextCanceled(t *testing.T) {
	t.Parallel()

	repo, mock := newTestRepo(t)
	mock.ExpectQuery("SELECT").WillReturnError(context.Canceled)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRepo_Count(t *testing.T) {
	t.Parallel()

	repo, mock := newTestRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM lexicon_words")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_CountByLength(t *testing.T) {
	t.Parallel()

	repo, mock := newTestRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM lexicon_words WHERE length = $1")).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.CountByLength(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Replace_EmptyLexicon(t *testing.T) {
	t.Parallel()

	repo, mock := newTestRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("TRUNCATE lexicon_senses, lexicon_words")).
		WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
	mock.ExpectCommit()

	n, err := repo.Replace(context.Background(), lexicon.NewBuilder().Build(), 100)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Replace_TruncateFailsRollsBack(t *testing.T) {
	t.Parallel()

	repo, mock := newTestRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec("TRUNCATE").WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	b := lexicon.NewBuilder()
	b.Add("cat", domain.Sense{PartOfSpeech: domain.PartOfSpeechNoun, Definition: "feline"})

	n, err := repo.Replace(context.Background(), b.Build(), 100)
	require.Error(t, err)
	assert.Equal(t, 0, n)
	assert.Contains(t, err.Error(), "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChunkInserts_SplitsSensesByRowLimit(t *testing.T) {
	t.Parallel()

	noun := func(def string) domain.Sense {
		return domain.Sense{PartOfSpeech: domain.PartOfSpeechNoun, Definition: def}
	}
	b := lexicon.NewBuilder()
	b.Add("bank", noun("sloping land"), noun("a financial institution"), noun("a long ridge"))
	b.Add("cat", noun("feline"))
	b.Add("ghost")
	b.Add("tree", noun("a tall perennial woody plant"), noun("a figure that branches"))
	lex := b.Build()
	words := slices.Collect(lex.Words())

	tests := []struct {
		name     string
		maxRows  int
		wantRows []int
	}{
		{"one statement", sensesPerInsert, []int{6}},
		{"exact split", 3, []int{3, 3}},
		{"uneven split", 4, []int{4, 2}},
		{"row per statement", 1, []int{1, 1, 1, 1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stmts := chunkInserts(lex, words, tt.maxRows)
			require.Len(t, stmts, 1+len(tt.wantRows))

			query, args, err := stmts[0].ToSql()
			require.NoError(t, err)
			assert.Contains(t, query, "INSERT INTO lexicon_words")
			assert.Len(t, args, 3*len(words))

			for i, rows := range tt.wantRows {
				query, args, err := stmts[i+1].ToSql()
				require.NoError(t, err)
				assert.Contains(t, query, "INSERT INTO lexicon_senses")
				assert.Len(t, args, 5*rows)
				assert.LessOrEqual(t, len(args), maxBindParams)
			}
		})
	}
}

func TestChunkInserts_NoSenses(t *testing.T) {
	t.Parallel()

	b := lexicon.NewBuilder()
	b.Add("ghost")
	lex := b.Build()

	stmts := chunkInserts(lex, []string{"ghost"}, sensesPerInsert)
	require.Len(t, stmts, 1)
	_, args, err := stmts[0].ToSql()
	require.NoError(t, err)
	assert.Len(t, args, 3)
}
