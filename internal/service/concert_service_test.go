package service

import (
	"context"
	"testing"

	"github.com/dexopax/concerthub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func concertRequest() model.ConcertRequest {
	return model.ConcertRequest{
		Title: "The Rolling Stones", Genre: "Rock", Date: "2026-03-15", Time: "20:00",
		Venue: "Olympic Stadium", Price: 5000, Image: "img", Description: "World tour",
	}
}

func TestConcertService_CreateThenGet(t *testing.T) {
	svc := NewConcertService(&fakeConcertRepo{})

	created, err := svc.CreateConcert(context.Background(), concertRequest())
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := svc.GetConcertByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestConcertService_GetByID_NotFound(t *testing.T) {
	svc := NewConcertService(&fakeConcertRepo{})

	_, err := svc.GetConcertByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrConcertNotFound)
}

func TestConcertService_Update(t *testing.T) {
	svc := NewConcertService(&fakeConcertRepo{})

	created, err := svc.CreateConcert(context.Background(), concertRequest())
	require.NoError(t, err)

	req := concertRequest()
	req.Venue = "New Venue"
	require.NoError(t, svc.UpdateConcert(context.Background(), created.ID, req))

	fetched, err := svc.GetConcertByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Venue", fetched.Venue)
}

func TestConcertService_Update_NotFound(t *testing.T) {
	svc := NewConcertService(&fakeConcertRepo{})

	err := svc.UpdateConcert(context.Background(), 99, concertRequest())
	assert.ErrorIs(t, err, ErrConcertNotFound)
}

func TestConcertService_DeleteThenGet(t *testing.T) {
	svc := NewConcertService(&fakeConcertRepo{})

	created, err := svc.CreateConcert(context.Background(), concertRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteConcert(context.Background(), created.ID))

	_, err = svc.GetConcertByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrConcertNotFound)
}

func TestConcertService_Delete_NotFound(t *testing.T) {
	svc := NewConcertService(&fakeConcertRepo{})

	err := svc.DeleteConcert(context.Background(), 99)
	assert.ErrorIs(t, err, ErrConcertNotFound)
}
