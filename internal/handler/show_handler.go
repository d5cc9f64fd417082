package handler

import (
	"errors"
	"net/http"

	"github.com/gigboard/listing-service/internal/dto"
	"github.com/gigboard/listing-service/internal/service"
	"github.com/labstack/echo/v4"
)

type ShowHandler struct {
	svc service.ShowService
}

func NewShowHandler(svc service.ShowService) *ShowHandler {
	return &ShowHandler{svc: svc}
}

func (h *ShowHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/shows")
	g.GET("", h.ListShows)
	g.POST("", h.CreateShow)
}

func (h *ShowHandler) ListShows(c echo.Context) error {
	rows, err := h.svc.ListShows(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToShowListings(rows))
}

func (h *ShowHandler) CreateShow(c echo.Context) error {
	var req dto.CreateShowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	show, err := h.svc.CreateShow(c.Request().Context(), service.ShowInput{
		ArtistID:  req.ArtistID,
		VenueID:   req.VenueID,
		StartTime: req.StartTime,
	})
	if err != nil {
		msg := "An error occurred. Show could not be listed."
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, msg)
		case errors.Is(err, service.ErrReferential):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, msg)
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, msg)
		}
	}

	return c.JSON(http.StatusCreated, dto.CreateResponse{
		ID:      show.ID,
		Message: "Show was successfully listed!",
	})
}
