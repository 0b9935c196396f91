package main

import (
	"log"

	"github.com/dmapsite/internal/config"
	"github.com/dmapsite/internal/db"
	"github.com/dmapsite/internal/handler"
	"github.com/dmapsite/internal/router"
	"github.com/dmapsite/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureUser(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to bootstrap admin user: %v", err)
	}

	api := handler.NewAPI(storage.New(db.DB), cfg)
	r := router.SetupRouter(cfg, api)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
