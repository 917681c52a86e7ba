package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dexopax/concerthub/internal/model"
	"github.com/dexopax/concerthub/internal/repository"
)

var (
	ErrConcertNotFound = errors.New("concert not found")
)

// ConcertService provides CRUD over concert listings
type ConcertService interface {
	ListConcerts(ctx context.Context) ([]model.Concert, error)
	GetConcertByID(ctx context.Context, id int) (*model.Concert, error)
	CreateConcert(ctx context.Context, req model.ConcertRequest) (*model.Concert, error)
	UpdateConcert(ctx context.Context, id int, req model.ConcertRequest) error
	DeleteConcert(ctx context.Context, id int) error
}

type concertService struct {
	repo repository.ConcertRepository
}

// NewConcertService creates a new ConcertService
func NewConcertService(repo repository.ConcertRepository) ConcertService {
	return &concertService{repo: repo}
}

// ListConcerts returns all concerts ordered by date ascending
func (s *concertService) ListConcerts(ctx context.Context) ([]model.Concert, error) {
	concerts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list concerts: %w", err)
	}
	return concerts, nil
}

// GetConcertByID returns a single concert or ErrConcertNotFound
func (s *concertService) GetConcertByID(ctx context.Context, id int) (*model.Concert, error) {
	concert, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get concert: %w", err)
	}
	if concert == nil {
		return nil, ErrConcertNotFound
	}
	return concert, nil
}

// CreateConcert inserts a new listing and returns it with the assigned id.
// Field validation is left to storage constraints.
func (s *concertService) CreateConcert(ctx context.Context, req model.ConcertRequest) (*model.Concert, error) {
	concert := &model.Concert{
		Title:       req.Title,
		Genre:       req.Genre,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, concert); err != nil {
		return nil, fmt.Errorf("failed to create concert: %w", err)
	}
	return concert, nil
}

// UpdateConcert overwrites all mutable fields of an existing listing
func (s *concertService) UpdateConcert(ctx context.Context, id int, req model.ConcertRequest) error {
	concert := &model.Concert{
		ID:          id,
		Title:       req.Title,
		Genre:       req.Genre,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	}
	updated, err := s.repo.Update(ctx, concert)
	if err != nil {
		return fmt.Errorf("failed to update concert: %w", err)
	}
	if !updated {
		return ErrConcertNotFound
	}
	return nil
}

// DeleteConcert removes a listing. Orders that reference it are kept.
func (s *concertService) DeleteConcert(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete concert: %w", err)
	}
	if !deleted {
		return ErrConcertNotFound
	}
	return nil
}
