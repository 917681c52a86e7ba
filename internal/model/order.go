package model

import "time"

const (
	OrderStatusPending = "pending"
)

// Order represents a ticket purchase. ConcertTitle is a denormalized snapshot
// taken at purchase time; deleting the concert does not touch the order.
type Order struct {
	ID             int64     `json:"id"`
	ConcertID      int64     `json:"concert_id"`
	ConcertTitle   string    `json:"concert_title"`
	TicketType     string    `json:"ticket_type"`
	Quantity       int64     `json:"quantity"`
	PricePerTicket int64     `json:"price_per_ticket"` // In minor currency units
	TotalPrice     int64     `json:"total_price"`
	CustomerEmail  string    `json:"customer_email"`
	CustomerName   string    `json:"customer_name"`
	CustomerPhone  string    `json:"customer_phone"`
	OrderNumber    string    `json:"order_number"`
	QRCode         string    `json:"qr_code"` // base64 PNG data URL
	OrderDate      time.Time `json:"order_date"`
	Status         string    `json:"status"`
}

// CreateOrderRequest is the purchase payload. Only the customer contact
// fields are validated; quantity and price fields pass through as-is.
type CreateOrderRequest struct {
	ConcertID      int64  `json:"concert_id"`
	ConcertTitle   string `json:"concert_title"`
	TicketType     string `json:"ticket_type"`
	Quantity       int64  `json:"quantity"`
	PricePerTicket int64  `json:"price_per_ticket"`
	TotalPrice     int64  `json:"total_price"`
	CustomerEmail  string `json:"customer_email"`
	CustomerName   string `json:"customer_name"`
	CustomerPhone  string `json:"customer_phone"`
}

// CreateOrderResponse is what the storefront needs to render the ticket
type CreateOrderResponse struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"order_number"`
	QRCode      string `json:"qr_code"`
	Message     string `json:"message"`
}

// Stats is the admin dashboard summary
type Stats struct {
	TotalConcerts int64 `json:"totalConcerts"`
	TotalOrders   int64 `json:"totalOrders"`
	TotalRevenue  int64 `json:"totalRevenue"`
}
