package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"cadastromunicipal.com/internal/config"
	"cadastromunicipal.com/internal/domain"
)

// AuthHandler handles login and logout. A successful login creates a Redis
// session and hands the opaque token to the browser in an HTTP-only cookie.
type AuthHandler struct {
	userSvc  domain.UserService
	sessions domain.SessionStore
	cfg      *config.Config
}

func NewAuthHandler(userSvc domain.UserService, sessions domain.SessionStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userSvc:  userSvc,
		sessions: sessions,
		cfg:      cfg,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a staff account and opens a session.
// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "BAD_REQUEST"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Informe e-mail e senha."})
	}

	user, err := h.userSvc.Authenticate(context.Background(), req.Email, req.Password)
	if err != nil {
		return handleError(c, err)
	}

	token, err := h.sessions.Create(context.Background(), user.ID)
	if err != nil {
		return handleError(c, domain.NewInternalError("falha ao criar sessão", err))
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.Session.TTL),
		HTTPOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "Login efetuado com sucesso.",
		"user":    user,
	})
}

// Logout destroys the session, if any, and expires the cookie.
// POST /auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(h.cfg.Session.CookieName); token != "" {
		if err := h.sessions.Destroy(context.Background(), token); err != nil {
			return handleError(c, domain.NewInternalError("falha ao encerrar sessão", err))
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return c.JSON(fiber.Map{"message": "Sessão encerrada."})
}
