package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gigboard/listing-service/internal/dto"
	"github.com/gigboard/listing-service/internal/models"
	"github.com/gigboard/listing-service/internal/repository"
	"github.com/gigboard/listing-service/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock ArtistService ---

type mockArtistService struct {
	listFn   func(ctx context.Context) ([]models.Artist, error)
	searchFn func(ctx context.Context, term string) ([]repository.NameSearchRow, error)
	getFn    func(ctx context.Context, id uint) (*service.ArtistDetail, error)
	createFn func(ctx context.Context, in service.ArtistInput) (*models.Artist, error)
}

func (m *mockArtistService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return m.listFn(ctx)
}
func (m *mockArtistService) Search(ctx context.Context, term string) ([]repository.NameSearchRow, error) {
	return m.searchFn(ctx, term)
}
func (m *mockArtistService) GetArtistDetail(ctx context.Context, id uint) (*service.ArtistDetail, error) {
	return m.getFn(ctx, id)
}
func (m *mockArtistService) CreateArtist(ctx context.Context, in service.ArtistInput) (*models.Artist, error) {
	return m.createFn(ctx, in)
}

// --- Tests ---

func TestListArtists_Handler(t *testing.T) {
	svc := &mockArtistService{
		listFn: func(ctx context.Context) ([]models.Artist, error) {
			return []models.Artist{{ID: 4, Name: "Guns N Petals"}}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/artists", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewArtistHandler(svc)
	require.NoError(t, h.ListArtists(c))

	var summaries []dto.ArtistSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, dto.ArtistSummary{ID: 4, Name: "Guns N Petals"}, summaries[0])
}

func TestCreateArtist_Handler_Success(t *testing.T) {
	svc := &mockArtistService{
		createFn: func(ctx context.Context, in service.ArtistInput) (*models.Artist, error) {
			return &models.Artist{ID: 4, Name: in.Name}, nil
		},
	}

	e := echo.New()
	body := `{"name":"Guns N Petals","city":"San Francisco","state":"CA","phone":"326-123-5000","genres":["Rock n Roll"],"facebook_link":"https://www.facebook.com/GunsNPetals"}`
	req := httptest.NewRequest(http.MethodPost, "/artists", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewArtistHandler(svc)
	require.NoError(t, h.CreateArtist(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Artist Guns N Petals was successfully listed!")
}

func TestGetArtist_Handler_NotFound(t *testing.T) {
	svc := &mockArtistService{
		getFn: func(ctx context.Context, id uint) (*service.ArtistDetail, error) {
			return nil, service.ErrNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/artists/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewArtistHandler(svc)
	err := h.GetArtist(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}
