package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"oxvocab/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var wordRowColumns = []string{"id", "word", "word_class", "level", "created_at"}

func TestWordRepo_CountWords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM words WHERE \\(\\$1::text\\[\\] IS NULL OR level = ANY\\(\\$1\\)\\)").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3000))

	count, err := repo.CountWords(context.Background(), []domain.Level{domain.LevelA1, domain.LevelB2})

	assert.NoError(t, err)
	assert.Equal(t, 3000, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_FetchWords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	rows := sqlmock.NewRows(wordRowColumns).
		AddRow(1, "abandon", "verb", "b2", time.Now()).
		AddRow(2, "ability", "noun", "a2", time.Now())

	mock.ExpectQuery("SELECT id, word, word_class, level, created_at FROM words").
		WithArgs(sqlmock.AnyArg(), 1000, 0).
		WillReturnRows(rows)

	words, err := repo.FetchWords(context.Background(), nil, 1000, 0)

	assert.NoError(t, err)
	assert.Len(t, words, 2)
	assert.Equal(t, "abandon", words[0].Word)
	assert.Equal(t, domain.LevelB2, words[0].Level)
	assert.Equal(t, "noun", words[1].WordClass)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_FetchWords_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery("SELECT id, word, word_class, level, created_at FROM words").
		WithArgs(sqlmock.AnyArg(), 10, 0).
		WillReturnError(fmt.Errorf("query error"))

	words, err := repo.FetchWords(context.Background(), nil, 10, 0)

	assert.Error(t, err)
	assert.Nil(t, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_FetchWords_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	rows := sqlmock.NewRows(wordRowColumns).AddRow("invalid", "abandon", "verb", "b2", time.Now())

	mock.ExpectQuery("SELECT id, word, word_class, level, created_at FROM words").
		WithArgs(sqlmock.AnyArg(), 10, 0).
		WillReturnRows(rows)

	words, err := repo.FetchWords(context.Background(), nil, 10, 0)

	assert.Error(t, err)
	assert.Nil(t, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_FetchWithWeights(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	rows := sqlmock.NewRows([]string{"id", "word", "word_class", "level", "created_at", "weight", "correct_streak"}).
		AddRow(1, "abandon", "verb", "b2", time.Now(), 25, 0).
		AddRow(2, "ability", "noun", "a2", time.Now(), nil, nil)

	mock.ExpectQuery("LEFT JOIN user_word_progress p ON p.word_id = w.id AND p.user_id = \\$1").
		WithArgs(int64(7), sqlmock.AnyArg(), 1000, 0).
		WillReturnRows(rows)

	words, err := repo.FetchWithWeights(context.Background(), 7, []domain.Level{domain.LevelA2, domain.LevelB2}, 1000, 0)

	assert.NoError(t, err)
	assert.Len(t, words, 2)
	assert.True(t, words[0].Reviewed)
	assert.Equal(t, 25, words[0].CurrentWeight)
	assert.Equal(t, "abandon", words[0].Word.Word)
	assert.False(t, words[1].Reviewed)
	assert.Equal(t, 0, words[1].CurrentWeight)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	query := "SELECT id, word, word_class, level, created_at FROM words WHERE id = \\$1"
	mock.ExpectQuery(query).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(wordRowColumns).AddRow(1, "abandon", "verb", "b2", time.Now()))
	mock.ExpectQuery(query).WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(wordRowColumns))

	word, err := repo.GetByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "abandon", word.Word)

	word, err = repo.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, word)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_Insert(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		expected bool
	}{
		{name: "new word", affected: 1, expected: true},
		{name: "existing word", affected: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			mock.ExpectExec("INSERT INTO words \\(word, word_class, level\\)").
				WithArgs("abandon", "verb", "b2").
				WillReturnResult(sqlmock.NewResult(1, tt.affected))

			created, err := repo.Insert(context.Background(), "abandon", "verb", domain.LevelB2)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, created)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
