package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dexopax/concerthub/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(cfg *Config) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), cfg.DatabaseDSN)
		if err == nil {
			err = pool.Ping(context.Background())
			if err == nil {
				log.Println("Successfully connected to PostgreSQL")
				return pool, nil
			}
		}
		log.Printf("Failed to connect to database (attempt %d/%d): %v. Retrying in %v...", i+1, maxRetries, err, retryInterval)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// AutoMigrate creates tables if they don't exist
func AutoMigrate(db *pgxpool.Pool) error {
	sql := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'admin',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS concerts (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		genre TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		venue TEXT NOT NULL,
		price BIGINT NOT NULL, -- in smallest currency unit
		image TEXT NOT NULL,
		description TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		concert_id BIGINT NOT NULL,
		concert_title TEXT NOT NULL,
		ticket_type TEXT NOT NULL,
		quantity BIGINT NOT NULL,
		price_per_ticket BIGINT NOT NULL,
		total_price BIGINT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_name TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		order_number TEXT UNIQUE NOT NULL,
		qr_code TEXT,
		order_date TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		status TEXT NOT NULL DEFAULT 'pending'
	);

	-- No FK from orders.concert_id: deleting a concert keeps its orders,
	-- which carry their own denormalized concert_title snapshot.

	CREATE INDEX IF NOT EXISTS idx_concerts_date ON concerts(date);
	CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders(order_date);
	`
	if _, err := db.Exec(context.Background(), sql); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Println("AutoMigrate applied successfully")
	return nil
}

// SeedData creates the bootstrap admin user and, when the catalog is empty,
// a couple of default concert listings.
func SeedData(db *pgxpool.Pool, cfg *Config) error {
	ctx := context.Background()

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	cmdTag, err := db.Exec(ctx, `
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, 'admin')
		ON CONFLICT (username) DO NOTHING`,
		cfg.AdminUsername, hash,
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	if cmdTag.RowsAffected() > 0 {
		log.Printf("Default admin user created (%s)", cfg.AdminUsername)
	}

	var concertCount int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM concerts`).Scan(&concertCount); err != nil {
		return fmt.Errorf("failed to count concerts during seeding: %w", err)
	}
	if concertCount > 0 {
		return nil
	}

	defaultConcerts := [][]interface{}{
		{
			"The Rolling Stones", "Rock", "2026-03-15", "20:00",
			"Olympic Stadium", int64(5000),
			"https://images.unsplash.com/photo-1501281668745-f7f57925c3b4?w=500",
			"The legendary British rock band on their new world tour!",
		},
		{
			"Billie Eilish", "Pop", "2026-04-20", "19:00",
			"Luzhniki Arena", int64(4500),
			"https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?w=500",
			"A dazzling performance by the global pop star with her latest album.",
		},
	}

	for _, c := range defaultConcerts {
		_, err := db.Exec(ctx, `
			INSERT INTO concerts (title, genre, date, time, venue, price, image, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			c...,
		)
		if err != nil {
			return fmt.Errorf("failed to seed default concerts: %w", err)
		}
	}
	log.Println("Default concerts added")

	return nil
}
