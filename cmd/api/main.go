package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/jobly-backend/config"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/auth"
	authmw "github.com/GoSim-25-26J-441/jobly-backend/internal/auth/middleware"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/events"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/logging"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres"
)

const serviceName = "jobly-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logging.SetLevel(cfg.App.LogLevel)
	ginMode := bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewConnection(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	publisher, err := events.NewPublisher(ctx, &cfg.Events)
	if err != nil {
		log.Fatalf("events: %v", err)
	}
	defer publisher.Close()

	var verifier authmw.TokenVerifier
	if cfg.Firebase.CredentialsPath != "" {
		client, err := auth.InitializeFirebase(ctx, &cfg.Firebase)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
		verifier = client
	} else if !cfg.Firebase.AuthDisabled {
		log.Println("FIREBASE_CREDENTIALS_PATH not set: admin routes will reject every request")
	}
	if cfg.Firebase.AuthDisabled {
		log.Println("AUTH_DISABLED=true: admin routes are open")
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		DB:             db,
		Publisher:      publisher,
		Verifier:       verifier,
		AuthDisabled:   cfg.Firebase.AuthDisabled,
		CORSOrigins:    cfg.Server.CORSOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("%s listening on :%s (env=%s gin=%s events=%s)", serviceName, cfg.Server.Port, cfg.App.Environment, ginMode, cfg.Events.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
