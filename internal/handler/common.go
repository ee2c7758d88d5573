package handler

import "github.com/labstack/echo/v4"

// currentUsername returns the operator username the JWT middleware stored
// in the context, or "" when the request is unauthenticated.
func currentUsername(c echo.Context) string {
	if v, ok := c.Get("username").(string); ok {
		return v
	}
	return ""
}
