package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trekvision/crm-server/internal/config"
	"github.com/trekvision/crm-server/internal/repository"
	"github.com/trekvision/crm-server/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Login verifies the credentials against the users table and returns a
// bearer token. Unknown users and wrong passwords get the same 401 so the
// response does not leak which usernames exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Requisição inválida"})
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Usuário e senha são obrigatórios"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Credenciais inválidas"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Erro no servidor"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Credenciais inválidas"})
	}

	tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.Username, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Erro no servidor"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "token": tok.Token})
}

// ChangePassword replaces the authenticated operator's password. The new
// password must be at least 8 characters; the confirmation check happens
// in the interface before the request is sent.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Requisição inválida"})
	}
	if len(req.NewPassword) < 8 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "A nova senha deve ter pelo menos 8 caracteres"})
	}

	username := currentUsername(c)
	if username == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro no servidor"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.CurrentPassword) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Senha atual incorreta"})
	}

	if err := h.Users.UpdatePassword(ctx, u.ID, req.NewPassword, h.Cfg.BcryptCost); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Erro ao alterar senha"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Senha alterada com sucesso"})
}
