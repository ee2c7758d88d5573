package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports that the API is up. Used by load balancers and by the
// interface's connection indicator.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "ok",
		"message": "CRM API is running",
	})
}
