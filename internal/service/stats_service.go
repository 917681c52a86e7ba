package service

import (
	"context"
	"fmt"

	"github.com/dexopax/concerthub/internal/model"
	"github.com/dexopax/concerthub/internal/repository"
)

// StatsService composes aggregate reads into the admin dashboard summary
type StatsService interface {
	GetStats(ctx context.Context) (*model.Stats, error)
}

type statsService struct {
	concertRepo repository.ConcertRepository
	orderRepo   repository.OrderRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(concertRepo repository.ConcertRepository, orderRepo repository.OrderRepository) StatsService {
	return &statsService{concertRepo: concertRepo, orderRepo: orderRepo}
}

// GetStats recomputes the summary on every call; there is no caching.
func (s *statsService) GetStats(ctx context.Context) (*model.Stats, error) {
	totalConcerts, err := s.concertRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count concerts: %w", err)
	}

	totalOrders, totalRevenue, err := s.orderRepo.CountAndRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}

	return &model.Stats{
		TotalConcerts: totalConcerts,
		TotalOrders:   totalOrders,
		TotalRevenue:  totalRevenue,
	}, nil
}
