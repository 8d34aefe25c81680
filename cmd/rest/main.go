package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-backoffice-be/internal/bootstrap"
	"travel-backoffice-be/internal/config"
	"travel-backoffice-be/internal/server"
	"travel-backoffice-be/internal/tracer"
	"travel-backoffice-be/pkg/database"
	"travel-backoffice-be/pkg/scheduler"
)

func main() {
	shutdownTracer := tracer.InitTracer("travel-backoffice-be")
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.Open(database.Options{
		Driver:  cfg.Database.Driver,
		DSN:     cfg.Database.Connection,
		Tracing: os.Getenv("OTEL_ENABLED") == "true",
	})
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container, err := bootstrap.NewContainer(gormDB, cfg)
	if err != nil {
		log.Panicf("Unable to build container: %v", err)
	}
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := container.ConsumerService.Consume(ctx); err != nil {
			container.Logger.Error("Main", "Contact consumer stopped", map[string]interface{}{"error": err.Error()})
		}
	}()

	if container.ActivityService != nil {
		if err := container.ActivityService.Start(ctx); err != nil {
			container.Logger.Warn("Main", "Activity feed not started", map[string]interface{}{"error": err.Error()})
		}
	}

	jobs := scheduler.New(container.Logger, time.Minute)
	if err := jobs.Add("purge_expired_otps", cfg.App.OTPPurgeSchedule, container.AuthService.PurgeExpiredOTPs); err != nil {
		log.Panicf("Unable to schedule jobs: %v", err)
	}
	jobs.Start()

	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		jobs.Stop(shutdownCtx)
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
