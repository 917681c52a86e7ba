package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/dexopax/concerthub/internal/model"
	"github.com/dexopax/concerthub/internal/monitoring"
	"github.com/dexopax/concerthub/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles order issuance and the admin order list
type OrderHandler struct {
	service service.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerInfoRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Customer information is required"})
		case errors.Is(err, service.ErrQRGeneration):
			log.Printf("QR code generation error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		default:
			log.Printf("Error creating order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	monitoring.TrackOrderCreated()
	c.JSON(http.StatusCreated, model.CreateOrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		QRCode:      order.QRCode,
		Message:     "Order created successfully",
	})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// RegisterOrderRoutes registers order routes. Creation is public (the
// storefront has no accounts); listing is for the admin panel.
func (h *OrderHandler) RegisterOrderRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	orderGroup := rg.Group("/orders")
	{
		orderGroup.POST("", h.CreateOrder)
		orderGroup.GET("", authMW, h.ListOrders)
	}
}
