package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dexopax/concerthub/internal/model"
	"github.com/dexopax/concerthub/internal/qr"
	"github.com/dexopax/concerthub/internal/repository"
	"github.com/dexopax/concerthub/internal/utils"
)

var (
	ErrCustomerInfoRequired = errors.New("customer information is required")
	ErrQRGeneration         = errors.New("failed to generate QR code")
)

// OrderService issues ticket orders and lists them for the admin panel
type OrderService interface {
	CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
}

type orderService struct {
	repo repository.OrderRepository
	qr   qr.Generator
}

// NewOrderService creates a new OrderService
func NewOrderService(repo repository.OrderRepository, qrGen qr.Generator) OrderService {
	return &orderService{repo: repo, qr: qrGen}
}

// CreateOrder validates the customer contact fields, generates an order
// number, asks the QR collaborator to encode it, and persists the order.
// The QR call is single-attempt: if it fails, nothing is written.
func (s *orderService) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	if req.CustomerEmail == "" || req.CustomerName == "" || req.CustomerPhone == "" {
		return nil, ErrCustomerInfoRequired
	}

	orderNumber := utils.GenerateOrderNumber()

	qrCode, err := s.qr.Encode(orderNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQRGeneration, err)
	}

	order := &model.Order{
		ConcertID:      req.ConcertID,
		ConcertTitle:   req.ConcertTitle,
		TicketType:     req.TicketType,
		Quantity:       req.Quantity,
		PricePerTicket: req.PricePerTicket,
		TotalPrice:     req.TotalPrice,
		CustomerEmail:  req.CustomerEmail,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		OrderNumber:    orderNumber,
		QRCode:         qrCode,
		Status:         model.OrderStatusPending,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		// The generated QR payload is discarded; no compensating action.
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	return order, nil
}

// ListOrders returns all orders, most recent first
func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
