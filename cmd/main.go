package main

import (
	"context"
	"log"

	"cadastromunicipal.com/internal/api"
	"cadastromunicipal.com/internal/config"
	"cadastromunicipal.com/internal/infra"
	"cadastromunicipal.com/internal/service"
)

func main() {
	cfg := config.LoadConfig()

	// Postgres
	pg, err := infra.NewPostgresClient(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Redis (session storage)
	rdb := infra.NewRedisClient(cfg.Redis)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	sessions := infra.NewSessionStore(rdb, cfg.Session.TTL)

	// Services
	cadastroSvc := service.NewCadastroService(pg.DB)
	userSvc := service.NewUserService(pg.DB)

	// Seed the bootstrap super-admin on an empty users table
	seed := cfg.Seed
	if err := userSvc.EnsureSuperAdmin(context.Background(), seed.AdminName, seed.AdminEmail, seed.AdminPassword); err != nil {
		log.Fatalf("Failed to seed super-admin user: %v", err)
	}

	// HTTP server
	app := api.NewServer(cfg)
	router := api.NewRouter(app, cfg, cadastroSvc, userSvc, sessions)
	router.RegisterRoutes()

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := app.Listen(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
