package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gigboard/listing-service/internal/dto"
	"github.com/gigboard/listing-service/internal/service"
	"github.com/labstack/echo/v4"
)

type ArtistHandler struct {
	svc service.ArtistService
}

func NewArtistHandler(svc service.ArtistService) *ArtistHandler {
	return &ArtistHandler{svc: svc}
}

func (h *ArtistHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/artists")
	g.GET("", h.ListArtists)
	g.POST("/search", h.SearchArtists)
	g.GET("/:id", h.GetArtist)
	g.POST("", h.CreateArtist)
	g.GET("/:id/edit", h.EditArtistForm)
	g.POST("/:id/edit", h.EditArtistSubmission)
}

func (h *ArtistHandler) ListArtists(c echo.Context) error {
	artists, err := h.svc.ListArtists(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToArtistSummaries(artists))
}

func (h *ArtistHandler) SearchArtists(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	rows, err := h.svc.Search(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToSearchResponse(rows))
}

func (h *ArtistHandler) GetArtist(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artist id")
	}

	detail, err := h.svc.GetArtistDetail(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "artist not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToArtistDetail(detail.Artist, detail.PastShows, detail.UpcomingShows))
}

func (h *ArtistHandler) CreateArtist(c echo.Context) error {
	var req dto.CreateArtistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	artist, err := h.svc.CreateArtist(c.Request().Context(), service.ArtistInput{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Phone:              req.Phone,
		Genres:             req.Genres,
		FacebookLink:       req.FacebookLink,
		WebsiteLink:        req.WebsiteLink,
		ImageLink:          req.ImageLink,
		SeekingTalent:      req.SeekingTalent,
		SeekingDescription: req.SeekingDescription,
	})
	if err != nil {
		msg := fmt.Sprintf("An error occurred. Artist %s could not be listed.", req.Name)
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, msg)
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, msg)
		}
	}

	return c.JSON(http.StatusCreated, dto.CreateResponse{
		ID:      artist.ID,
		Message: fmt.Sprintf("Artist %s was successfully listed!", artist.Name),
	})
}

// EditArtistForm returns the current stored record for pre-filling the edit
// form.
func (h *ArtistHandler) EditArtistForm(c echo.Context) error {
	return h.GetArtist(c)
}

// EditArtistSubmission accepts the edit form but persists nothing; the
// response is the detail view re-read from the store.
func (h *ArtistHandler) EditArtistSubmission(c echo.Context) error {
	return h.GetArtist(c)
}
