package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/trekvision/crm-server/internal/config"
	"github.com/trekvision/crm-server/internal/database"
	"github.com/trekvision/crm-server/internal/handler"
	"github.com/trekvision/crm-server/internal/queue"
	"github.com/trekvision/crm-server/internal/repository"
	"github.com/trekvision/crm-server/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	users := repository.NewUserRepo(db)
	clients := repository.NewClientRepo(db)

	seedAdmin(ctx, users, cfg.BcryptCost)

	rdb := config.NewRedisClient() // nil disables cache and rate limiting
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	// Audit consumer runs for the lifetime of the process and reconnects on
	// broker failures.
	go func() {
		if err := queue.StartAuditConsumer(); err != nil {
			log.Printf("audit consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true

	cacheCfg := config.LoadCacheConfig()
	authH := handler.NewAuthHandler(cfg, users)
	clientH := handler.NewClientHandler(clients, rdb, cacheCfg.Prefix)
	router.Register(e, cfg, authH, clientH, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// seedAdmin creates the default admin/admin account when the users table
// is empty, so a fresh install can be logged into before any operator
// exists. The password is expected to be changed on first login.
func seedAdmin(ctx context.Context, users *repository.UserRepo, cost int) {
	n, err := users.Count(ctx)
	if err != nil {
		log.Fatalf("users: %v", err)
	}
	if n > 0 {
		return
	}
	if _, err := users.Create(ctx, "admin", "admin", cost); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	log.Println("seeded default admin user")
}
