package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"members-portal/internal/config"
	"members-portal/internal/delivery/httpserver"
	"members-portal/internal/infrastructure"
	"members-portal/internal/infrastructure/db/postgres"
	"members-portal/internal/messaging"
	"members-portal/internal/session"
	"members-portal/internal/usecase"
)

func main() {
	cfg := config.Load()

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}
	repo := postgres.NewUserRepository(db)

	var store session.Store
	if cfg.RedisHost != "" {
		store = session.NewRedisStore(infrastructure.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword))
	} else {
		log.Println("REDIS_HOST not set, using in-memory session store")
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store, cfg.SessionCookie, cfg.SessionTTL)

	var events usecase.Events
	if cfg.NATSUrl != "" {
		publisher, err := messaging.Connect(cfg.NATSUrl)
		if err != nil {
			log.Fatal("failed to connect to NATS: ", err)
		}
		defer publisher.Close()
		events = publisher
	}

	uc := usecase.NewAuthUsecase(repo, events, cfg.BcryptCost)

	e, err := httpserver.NewServer(httpserver.NewHandler(uc, sessions))
	if err != nil {
		log.Fatal("failed to build server: ", err)
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Println("server stopped: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatal("shutdown failed: ", err)
	}
}
