package main

import (
	"log"

	"github.com/rudirimachado/portfolio-backend/config"
	authservice "github.com/rudirimachado/portfolio-backend/internal/auth/service"
	"github.com/rudirimachado/portfolio-backend/internal/bootstrap"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/github"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	tokens, err := authservice.NewTokenService(cfg.Admin.JWTSecret, "portfolio-backend", cfg.Admin.TokenTTL)
	if err != nil {
		log.Fatalf("token service: %v", err)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-backend",
		Config:      cfg,
		Source:      github.NewClient(cfg.GitHub.Token),
		Store:       store.NewFileStore(cfg.Store.DataFile),
		Tokens:      tokens,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
