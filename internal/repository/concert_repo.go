package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dexopax/concerthub/internal/model"

	"github.com/jackc/pgx/v5"
)

// ConcertRepository defines operations for concert data
type ConcertRepository interface {
	Create(ctx context.Context, concert *model.Concert) error
	FindByID(ctx context.Context, id int) (*model.Concert, error)
	FindAll(ctx context.Context) ([]model.Concert, error)
	Update(ctx context.Context, concert *model.Concert) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type concertRepository struct {
	db Querier
}

// NewConcertRepository creates a new ConcertRepository
func NewConcertRepository(db Querier) ConcertRepository {
	return &concertRepository{db: db}
}

// Create inserts a new concert and fills in the assigned id and created_at
func (r *concertRepository) Create(ctx context.Context, c *model.Concert) error {
	sql := `INSERT INTO concerts (title, genre, date, time, venue, price, image, description)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql,
		c.Title, c.Genre, c.Date, c.Time, c.Venue, c.Price, c.Image, c.Description,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create concert: %w", err)
	}
	return nil
}

// FindByID retrieves a concert by its ID
func (r *concertRepository) FindByID(ctx context.Context, id int) (*model.Concert, error) {
	c := &model.Concert{}
	sql := `SELECT id, title, genre, date, time, venue, price, image, description, created_at
            FROM concerts WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&c.ID, &c.Title, &c.Genre, &c.Date, &c.Time, &c.Venue, &c.Price, &c.Image, &c.Description, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find concert by ID: %w", err)
	}
	return c, nil
}

// FindAll retrieves all concerts ordered by date ascending
func (r *concertRepository) FindAll(ctx context.Context) ([]model.Concert, error) {
	sql := `SELECT id, title, genre, date, time, venue, price, image, description, created_at
            FROM concerts ORDER BY date ASC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query concerts: %w", err)
	}
	defer rows.Close()

	var concerts []model.Concert
	for rows.Next() {
		var c model.Concert
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Genre, &c.Date, &c.Time, &c.Venue, &c.Price, &c.Image, &c.Description, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan concert row: %w", err)
		}
		concerts = append(concerts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating concert rows: %w", err)
	}
	return concerts, nil
}

// Update overwrites all mutable fields of a concert. Returns false when no
// row matched the id.
func (r *concertRepository) Update(ctx context.Context, c *model.Concert) (bool, error) {
	sql := `UPDATE concerts
            SET title = $1, genre = $2, date = $3, time = $4, venue = $5, price = $6, image = $7, description = $8
            WHERE id = $9`
	cmdTag, err := r.db.Exec(ctx, sql,
		c.Title, c.Genre, c.Date, c.Time, c.Venue, c.Price, c.Image, c.Description, c.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update concert: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Delete removes a concert. Returns false when no row matched the id.
// Orders referencing the concert are left untouched.
func (r *concertRepository) Delete(ctx context.Context, id int) (bool, error) {
	sql := `DELETE FROM concerts WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete concert: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Count returns the total number of concerts
func (r *concertRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM concerts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count concerts: %w", err)
	}
	return count, nil
}
