package model

import "time"

// Concert represents a concert listing
type Concert struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time"` // HH:MM
	Venue       string    `json:"venue"`
	Price       int64     `json:"price"` // In minor currency units
	Image       string    `json:"image"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConcertRequest carries concert fields for create and full-overwrite update.
// Fields are intentionally unvalidated beyond JSON shape; storage constraints
// are the source of truth for what is required.
type ConcertRequest struct {
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Venue       string `json:"venue"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
