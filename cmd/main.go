// VidyaMitra readiness service
//
// Internship verification and readiness scoring for engineering students:
//   - profile management (whole-record upsert keyed by user id)
//   - listing verification (trust score, red flags, status)
//   - skill matching with learning paths, ranked listing feed
//   - readiness scoring against a resume-strength input
//   - semester calendar and preparation windows
//   - alert rules (new match, deadline, readiness improved, season start)
//
// Publishes EVENT_ALERT_CREATED to Redis for Gateway SSE forward.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Harshitasingh-co/VidyaMitra/internal/config"
	"github.com/Harshitasingh-co/VidyaMitra/internal/db"
	"github.com/Harshitasingh-co/VidyaMitra/internal/scheduler"
	"github.com/Harshitasingh-co/VidyaMitra/internal/service"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[readiness-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[readiness-service] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[readiness-service] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[readiness-service] PostgreSQL connected ✓")

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("[readiness-service] Migrations: %v", err)
	}
	log.Println("[readiness-service] Migrations applied ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[readiness-service] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[readiness-service] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[readiness-service] Redis connected ✓")

	svc := service.NewService(pool, rdb)

	// ── Alert sweep ──────────────────────────────────────────────────────────
	sched := scheduler.New(svc, cfg.SweepIntervalHours)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("[readiness-service] Scheduler: %v", err)
	}
	defer sched.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	h := service.NewHandler(svc)
	h.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[readiness-service] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[readiness-service] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[readiness-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[readiness-service] Shutdown error: %v", err)
	}
	log.Println("[readiness-service] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "readiness-service",
		"version": version,
	})
}
