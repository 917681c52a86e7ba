package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dexopax/concerthub/internal/model"
	"github.com/dexopax/concerthub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConcertService struct {
	concerts []model.Concert
	concert  *model.Concert
	err      error
}

func (s *stubConcertService) ListConcerts(ctx context.Context) ([]model.Concert, error) {
	return s.concerts, s.err
}

func (s *stubConcertService) GetConcertByID(ctx context.Context, id int) (*model.Concert, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.concert, nil
}

func (s *stubConcertService) CreateConcert(ctx context.Context, req model.ConcertRequest) (*model.Concert, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.concert, nil
}

func (s *stubConcertService) UpdateConcert(ctx context.Context, id int, req model.ConcertRequest) error {
	return s.err
}

func (s *stubConcertService) DeleteConcert(ctx context.Context, id int) error {
	return s.err
}

func concertRouter(svc service.ConcertService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewConcertHandler(svc).RegisterConcertRoutes(router.Group("/api"), func(c *gin.Context) { c.Next() })
	return router
}

func TestConcertHandler_ListConcerts(t *testing.T) {
	svc := &stubConcertService{concerts: []model.Concert{
		{ID: 1, Title: "A", Date: "2026-03-15"},
		{ID: 2, Title: "B", Date: "2026-04-20"},
	}}
	router := concertRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/concerts", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var concerts []model.Concert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &concerts))
	require.Len(t, concerts, 2)
	assert.LessOrEqual(t, concerts[0].Date, concerts[1].Date)
}

func TestConcertHandler_ListConcerts_Empty(t *testing.T) {
	router := concertRouter(&stubConcertService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/concerts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestConcertHandler_GetConcertByID_NotFound(t *testing.T) {
	router := concertRouter(&stubConcertService{err: service.ErrConcertNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/concerts/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Concert not found")
}

func TestConcertHandler_CreateConcert(t *testing.T) {
	svc := &stubConcertService{concert: &model.Concert{ID: 3, Title: "New Show"}}
	router := concertRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/concerts",
		strings.NewReader(`{"title":"New Show","genre":"Rock","date":"2026-05-01","time":"21:00","venue":"Club","price":1000,"image":"img","description":"d"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var concert model.Concert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &concert))
	assert.Equal(t, 3, concert.ID)
}

func TestConcertHandler_DeleteConcert_NotFound(t *testing.T) {
	router := concertRouter(&stubConcertService{err: service.ErrConcertNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/concerts/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
