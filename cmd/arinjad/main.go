package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/devrajn/arinja/internal/api"
	"github.com/devrajn/arinja/internal/config"
	"github.com/devrajn/arinja/internal/news"
	"github.com/devrajn/arinja/internal/scheduler"
	"github.com/devrajn/arinja/internal/scraper"
	"github.com/devrajn/arinja/internal/storage"
)

// Daemon entrypoint: cron-scheduled batch fetching plus a read-only
// article API.
func main() {
	cfg := config.Load()

	store, err := storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr)
	if err != nil {
		log.Fatalf("init store failed: %v", err)
	}

	s, err := scheduler.New(cfg.CronSpec, news.NewSearchClient(), scraper.New(), store)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}
	s.Start()

	r := gin.Default()
	apiServer := api.NewServer(store)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
