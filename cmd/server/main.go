package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/rocgym/job-board/internal/config"
	"github.com/rocgym/job-board/internal/database"
	"github.com/rocgym/job-board/internal/handler"
	"github.com/rocgym/job-board/internal/middleware"
	"github.com/rocgym/job-board/internal/repository"
	"github.com/rocgym/job-board/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting disabled")
	}

	accounts := repository.NewAccountRepo(db)
	jobs := repository.NewJobRepo(db)
	applications := repository.NewApplicationRepo(db)
	members := repository.NewMemberRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.Register(e, router.Deps{
		Auth:         handler.NewAuthHandler(cfg, accounts),
		Jobs:         handler.NewJobHandler(jobs, applications),
		Applications: handler.NewApplicationHandler(jobs, applications),
		Members:      handler.NewMemberHandler(members),
		Health:       handler.NewHealthHandler(db, rdb),
		Accounts:     accounts,
		JWTSecret:    cfg.JWTSecret,
		RateLimiter:  middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
