package handler

import (
	"log"
	"net/http"

	"github.com/dexopax/concerthub/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the admin dashboard summary
type StatsHandler struct {
	service service.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(s service.StatsService) *StatsHandler {
	return &StatsHandler{service: s}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		log.Printf("Error getting stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RegisterStatsRoutes registers the stats route behind the auth gate
func (h *StatsHandler) RegisterStatsRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/stats", authMW, h.GetStats)
}
