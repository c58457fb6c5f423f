package api

import (
	"github.com/gofiber/fiber/v2"

	"cadastromunicipal.com/internal/api/middleware"
	"cadastromunicipal.com/internal/config"
	"cadastromunicipal.com/internal/domain"
)

// Router wires every route to its handler and authorization tier.
type Router struct {
	app         *fiber.App
	cfg         *config.Config
	cadastroSvc domain.CadastroService
	userSvc     domain.UserService
	sessions    domain.SessionStore
}

func NewRouter(app *fiber.App, cfg *config.Config, cadastroSvc domain.CadastroService, userSvc domain.UserService, sessions domain.SessionStore) *Router {
	return &Router{
		app:         app,
		cfg:         cfg,
		cadastroSvc: cadastroSvc,
		userSvc:     userSvc,
		sessions:    sessions,
	}
}

// RegisterRoutes registers the public, authenticated, admin and super-admin
// surfaces. The gates for each route are an ordered chain of predicates run
// before the handler.
func (r *Router) RegisterRoutes() {
	authHandler := NewAuthHandler(r.userSvc, r.sessions, r.cfg)
	cadastroHandler := NewCadastroHandler(r.cadastroSvc)
	userHandler := NewUserHandler(r.userSvc)

	// Health Check
	r.app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	// Auth Public Routes
	r.app.Post("/auth/login", authHandler.Login)
	r.app.Post("/auth/logout", authHandler.Logout)

	// The whole /api group resolves the session cookie up front; individual
	// routes then declare their own tier.
	api := r.app.Group("/api", middleware.ResolveSession(r.sessions, r.userSvc, r.cfg.Session.CookieName))

	// Public: the citizen-facing intake form posts here anonymously.
	api.Post("/cadastro", cadastroHandler.Store)

	// Authenticated
	api.Get("/cadastro", middleware.RequireAuth, cadastroHandler.List)
	api.Get("/cadastro/:id", middleware.RequireAuth, cadastroHandler.ByID)
	api.Get("/user/me", middleware.RequireAuth, userHandler.Me)
	api.Post("/user/change-password", middleware.RequireAuth, userHandler.ChangePassword)

	// Admin
	api.Get("/users", middleware.RequireAuth, middleware.RequireAdmin, userHandler.ListUsers)
	api.Post("/users", middleware.RequireAuth, middleware.RequireAdmin, userHandler.CreateUser)

	// Super-admin
	api.Put("/users/:id/role", middleware.RequireAuth, middleware.RequireSuperAdmin, userHandler.UpdateRole)
}
