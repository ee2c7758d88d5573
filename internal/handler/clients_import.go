package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trekvision/crm-server/internal/model"
	"github.com/trekvision/crm-server/internal/queue"
)

type importReq struct {
	Clients []model.ClientFields `json:"clients"`
}

// Import handles POST /api/clients/import. Each row is validated with the
// same rules as a single create; invalid rows are skipped rather than
// failing the batch, and the valid ones are inserted in one transaction so
// a storage error leaves the record set untouched.
func (h *ClientHandler) Import(c echo.Context) error {
	var req importReq
	if err := c.Bind(&req); err != nil || req.Clients == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Dados inválidos"})
	}

	valid := make([]model.ClientFields, 0, len(req.Clients))
	skipped := 0
	for i := range req.Clients {
		f := req.Clients[i]
		if msg := validateClientFields(&f); msg != "" {
			skipped++
			continue
		}
		valid = append(valid, f)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	imported, err := h.Clients.BulkImport(ctx, valid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao importar clientes"})
	}
	skipped += len(valid) - imported

	if imported > 0 {
		h.afterMutation(c, queue.ClientAuditEvent{
			Action: queue.ActionImported, Count: imported,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  fmt.Sprintf("%d clientes importados com sucesso", imported),
		"imported": imported,
		"skipped":  skipped,
	})
}
