package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/dexopax/concerthub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcertRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	createdAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO concerts (title, genre, date, time, venue, price, image, description)`)).
		WithArgs("The Rolling Stones", "Rock", "2026-03-15", "20:00", "Olympic Stadium", int64(5000), "https://example.com/rs.jpg", "World tour").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, createdAt))

	repo := NewConcertRepository(mock)
	concert := &model.Concert{
		Title: "The Rolling Stones", Genre: "Rock", Date: "2026-03-15", Time: "20:00",
		Venue: "Olympic Stadium", Price: 5000, Image: "https://example.com/rs.jpg", Description: "World tour",
	}
	err = repo.Create(context.Background(), concert)

	require.NoError(t, err)
	assert.Equal(t, 3, concert.ID)
	assert.Equal(t, createdAt, concert.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConcertRepository_FindAll_OrderedByDate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM concerts ORDER BY date ASC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "genre", "date", "time", "venue", "price", "image", "description", "created_at"}).
			AddRow(1, "A", "Rock", "2026-03-15", "20:00", "Stadium", int64(5000), "img", "desc", now).
			AddRow(2, "B", "Pop", "2026-04-20", "19:00", "Arena", int64(4500), "img", "desc", now))

	repo := NewConcertRepository(mock)
	concerts, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, concerts, 2)
	assert.Equal(t, "A", concerts[0].Title)
	assert.Equal(t, "B", concerts[1].Title)
	assert.LessOrEqual(t, concerts[0].Date, concerts[1].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConcertRepository_FindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT (.+) FROM concerts WHERE id = \$1`).
		WithArgs(99).
		WillReturnError(pgx.ErrNoRows)

	repo := NewConcertRepository(mock)
	concert, err := repo.FindByID(context.Background(), 99)

	assert.NoError(t, err)
	assert.Nil(t, concert)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConcertRepository_Update_NoRowsAffected(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE concerts`).
		WithArgs("T", "G", "2026-01-01", "20:00", "V", int64(100), "img", "desc", 42).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewConcertRepository(mock)
	updated, err := repo.Update(context.Background(), &model.Concert{
		ID: 42, Title: "T", Genre: "G", Date: "2026-01-01", Time: "20:00",
		Venue: "V", Price: 100, Image: "img", Description: "desc",
	})

	require.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConcertRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM concerts WHERE id = $1`)).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewConcertRepository(mock)
	deleted, err := repo.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConcertRepository_Delete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM concerts WHERE id = $1`)).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewConcertRepository(mock)
	deleted, err := repo.Delete(context.Background(), 99)

	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConcertRepository_Count(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM concerts`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	repo := NewConcertRepository(mock)
	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
