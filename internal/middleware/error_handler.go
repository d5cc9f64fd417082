package middleware

import (
	"log"
	"net/http"

	"github.com/gigboard/listing-service/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler turns every error escaping a handler into the JSON message
// envelope the rest of the API uses. Unexpected errors are logged and
// answered with a 500; they never take the process down (Recover runs
// upstream of this).
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	if code >= http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
