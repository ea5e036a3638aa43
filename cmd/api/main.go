package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devfolio/portfolio-backend/config"
	"github.com/devfolio/portfolio-backend/internal/auth"
	"github.com/devfolio/portfolio-backend/internal/bootstrap"
	"github.com/devfolio/portfolio-backend/internal/cache"
	"github.com/devfolio/portfolio-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	clients, err := bootstrap.InitializeFirebase(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	defer clients.Firestore.Close()

	cacheClient, err := bootstrap.OpenCache(ctx, &cfg.Cache)
	if err != nil {
		log.Fatalf("cache: %v", err)
	}
	if cacheClient == nil {
		log.Println("REDIS_ADDR not set, running without cache")
	} else {
		defer cacheClient.Close()
	}

	contentStore := store.New(clients.Firestore)
	gate := auth.NewGate(clients.Auth, cfg.Admin.Email)

	router, svcs, err := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Config:      cfg,
		Store:       contentStore,
		Gate:        gate,
		CacheClient: cacheClient,
	})
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	var warmer *cache.Warmer
	if cacheClient != nil {
		warmer = cache.NewWarmer(cfg.Cache.WarmSchedule, svcs.Projects.Refresh)
		if err := warmer.Start(); err != nil {
			log.Fatalf("cache warmer: %v", err)
		}
		defer warmer.Stop()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("portfolio-backend %s listening on :%s (env %s)", cfg.App.Version, cfg.Server.Port, cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
