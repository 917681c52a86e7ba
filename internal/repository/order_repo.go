package repository

import (
	"context"
	"fmt"

	"github.com/dexopax/concerthub/internal/model"
)

// OrderRepository defines operations for order data
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindAll(ctx context.Context) ([]model.Order, error)
	CountAndRevenue(ctx context.Context) (int64, int64, error)
}

type orderRepository struct {
	db Querier
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db Querier) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts a new order and fills in the assigned id and order_date
func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	sql := `INSERT INTO orders (concert_id, concert_title, ticket_type, quantity, price_per_ticket, total_price,
                                customer_email, customer_name, customer_phone, order_number, qr_code, status)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id, order_date`
	err := r.db.QueryRow(ctx, sql,
		o.ConcertID, o.ConcertTitle, o.TicketType, o.Quantity, o.PricePerTicket, o.TotalPrice,
		o.CustomerEmail, o.CustomerName, o.CustomerPhone, o.OrderNumber, o.QRCode, o.Status,
	).Scan(&o.ID, &o.OrderDate)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// FindAll retrieves all orders, most recent first
func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	sql := `SELECT id, concert_id, concert_title, ticket_type, quantity, price_per_ticket, total_price,
                   customer_email, customer_name, customer_phone, order_number, qr_code, order_date, status
            FROM orders ORDER BY order_date DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID, &o.ConcertID, &o.ConcertTitle, &o.TicketType, &o.Quantity, &o.PricePerTicket, &o.TotalPrice,
			&o.CustomerEmail, &o.CustomerName, &o.CustomerPhone, &o.OrderNumber, &o.QRCode, &o.OrderDate, &o.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return orders, nil
}

// CountAndRevenue returns the total number of orders and the summed revenue.
// COALESCE guards the sum so an empty table reports 0, not NULL.
func (r *orderRepository) CountAndRevenue(ctx context.Context) (int64, int64, error) {
	var count, revenue int64
	sql := `SELECT COUNT(*), COALESCE(SUM(total_price), 0) FROM orders`
	if err := r.db.QueryRow(ctx, sql).Scan(&count, &revenue); err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate orders: %w", err)
	}
	return count, revenue, nil
}
