package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/dexopax/concerthub/internal/model"
	"github.com/dexopax/concerthub/internal/service"

	"github.com/gin-gonic/gin"
)

// ConcertHandler handles concert catalog requests
type ConcertHandler struct {
	service service.ConcertService
}

// NewConcertHandler creates a new ConcertHandler
func NewConcertHandler(s service.ConcertService) *ConcertHandler {
	return &ConcertHandler{service: s}
}

func (h *ConcertHandler) ListConcerts(c *gin.Context) {
	concerts, err := h.service.ListConcerts(c.Request.Context())
	if err != nil {
		log.Printf("Error listing concerts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if concerts == nil {
		concerts = []model.Concert{}
	}
	c.JSON(http.StatusOK, concerts)
}

func (h *ConcertHandler) GetConcertByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Concert not found"})
		return
	}

	concert, err := h.service.GetConcertByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrConcertNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Concert not found"})
			return
		}
		log.Printf("Error getting concert by ID: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, concert)
}

func (h *ConcertHandler) CreateConcert(c *gin.Context) {
	var req model.ConcertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	concert, err := h.service.CreateConcert(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error creating concert: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, concert)
}

func (h *ConcertHandler) UpdateConcert(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Concert not found"})
		return
	}

	var req model.ConcertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.service.UpdateConcert(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, service.ErrConcertNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Concert not found"})
			return
		}
		log.Printf("Error updating concert: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Concert updated", "id": id})
}

func (h *ConcertHandler) DeleteConcert(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Concert not found"})
		return
	}

	if err := h.service.DeleteConcert(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrConcertNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Concert not found"})
			return
		}
		log.Printf("Error deleting concert: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Concert deleted"})
}

// RegisterConcertRoutes registers concert routes; reads are public, writes
// sit behind the auth gate.
func (h *ConcertHandler) RegisterConcertRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	concertGroup := rg.Group("/concerts")
	{
		concertGroup.GET("", h.ListConcerts)
		concertGroup.GET("/:id", h.GetConcertByID)
		concertGroup.POST("", authMW, h.CreateConcert)
		concertGroup.PUT("/:id", authMW, h.UpdateConcert)
		concertGroup.DELETE("/:id", authMW, h.DeleteConcert)
	}
}
