package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trekvision/crm-server/internal/expiry"
	"github.com/trekvision/crm-server/internal/export"
	"github.com/trekvision/crm-server/internal/tableview"
)

// Stats handles GET /api/clients/stats: bucket counts over the active set,
// computed fresh on every call.
func (h *ClientHandler) Stats(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Clients.ListActive(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao buscar clientes"})
	}
	return c.JSON(http.StatusOK, expiry.BuildReport(items, expiry.Today()))
}

// Export handles GET /api/clients/export: the active set, narrowed by the
// same search/filter/sort parameters the list endpoint takes, rendered as
// a CSV download.
func (h *ClientHandler) Export(c echo.Context) error {
	q, ok := viewQuery(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Parâmetros de consulta inválidos"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Clients.ListActive(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao buscar clientes"})
	}

	today := expiry.Today()
	data := export.CSV(tableview.Apply(items, today, q))

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+export.Filename(today)+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}
