package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/trekvision/crm-server/internal/expiry"
	"github.com/trekvision/crm-server/internal/middleware"
	"github.com/trekvision/crm-server/internal/model"
	"github.com/trekvision/crm-server/internal/queue"
	"github.com/trekvision/crm-server/internal/repository"
	queue_publisher "github.com/trekvision/crm-server/internal/service"
	"github.com/trekvision/crm-server/internal/tableview"
)

// ClientHandler bundles dependencies for the client CRUD endpoints.
// Redis and CachePrefix are optional; when set, mutations flush the
// response cache so list reads reflect writes immediately.
type ClientHandler struct {
	Clients     *repository.ClientRepo
	Redis       *redis.Client
	CachePrefix string
}

func NewClientHandler(clients *repository.ClientRepo, rdb *redis.Client, cachePrefix string) *ClientHandler {
	if clients == nil {
		panic("nil repository passed to NewClientHandler")
	}
	return &ClientHandler{Clients: clients, Redis: rdb, CachePrefix: cachePrefix}
}

// reqCtx derives a bounded context for DB work from the request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// afterMutation flushes the response cache and publishes an audit event.
// Both are best-effort: neither failure affects the response.
func (h *ClientHandler) afterMutation(c echo.Context, ev queue.ClientAuditEvent) {
	ev.Actor = currentUsername(c)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		middleware.FlushCache(ctx, h.Redis, h.CachePrefix)
		_ = queue_publisher.PublishClientAudit(ctx, ev)
	}()
}

// viewQuery builds a table-view query from the optional search/filter/
// sort/dir parameters of a list request. The bool result is false when a
// parameter names an unknown bucket or field.
func viewQuery(c echo.Context) (tableview.Query, bool) {
	var q tableview.Query

	quick, ok := tableview.ParseQuickFilter(c.QueryParam("filter"))
	if !ok {
		return q, false
	}
	q.Quick = quick
	q.Search = c.QueryParam("search")

	if s := c.QueryParam("sort"); s != "" {
		key, ok := tableview.ParseField(s)
		if !ok {
			return q, false
		}
		q.Sort = &tableview.SortOrder{Key: key, Desc: c.QueryParam("dir") == "desc"}
	}
	return q, true
}

// List handles GET /api/clients. Without parameters it returns the active
// set newest-first; with search/filter/sort/dir it runs the table-view
// pipeline server-side.
func (h *ClientHandler) List(c echo.Context) error {
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
	return c.JSON(http.StatusOK, tableview.Apply(items, expiry.Today(), q))
}

// Archived handles GET /api/clients/archived and returns the soft-deleted
// records.
func (h *ClientHandler) Archived(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Clients.ListArchived(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao buscar clientes"})
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/clients/:id.
func (h *ClientHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	client, err := h.Clients.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Cliente não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao buscar cliente"})
	}
	return c.JSON(http.StatusOK, client)
}

// Create handles POST /api/clients. The server assigns the identifier and
// timestamps; validation failures never reach the database.
func (h *ClientHandler) Create(c echo.Context) error {
	var f model.ClientFields
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Requisição inválida"})
	}
	if msg := validateClientFields(&f); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	client, err := h.Clients.Create(ctx, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao criar cliente"})
	}

	h.afterMutation(c, queue.ClientAuditEvent{
		Action: queue.ActionCreated, ClientID: client.ID, FullName: client.FullName,
	})
	return c.JSON(http.StatusCreated, client)
}

// Update handles PUT /api/clients/:id, replacing every mutable field.
func (h *ClientHandler) Update(c echo.Context) error {
	var f model.ClientFields
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Requisição inválida"})
	}
	if msg := validateClientFields(&f); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	client, err := h.Clients.Update(ctx, c.Param("id"), f)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Cliente não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao atualizar cliente"})
	}

	h.afterMutation(c, queue.ClientAuditEvent{
		Action: queue.ActionUpdated, ClientID: client.ID, FullName: client.FullName,
	})
	return c.JSON(http.StatusOK, client)
}

// Archive handles DELETE /api/clients/:id. Deletion is a soft archive: the
// row is flagged and disappears from the active list but is never removed,
// so it can still be inspected under /api/clients/archived.
func (h *ClientHandler) Archive(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	client, err := h.Clients.Archive(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Cliente não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao excluir cliente"})
	}

	h.afterMutation(c, queue.ClientAuditEvent{
		Action: queue.ActionArchived, ClientID: client.ID, FullName: client.FullName,
	})
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Cliente arquivado com sucesso",
		"client":  client,
	})
}
