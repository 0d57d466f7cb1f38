package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/altolabs/cashplan/internal/api/handlers"
	"github.com/altolabs/cashplan/internal/api/middleware"
	"github.com/altolabs/cashplan/internal/config"
	"github.com/altolabs/cashplan/internal/explain"
	"github.com/altolabs/cashplan/internal/logger"
	"github.com/altolabs/cashplan/internal/planner"
)

func main() {
	// .env is optional; the environment wins either way.
	_ = godotenv.Load()

	cfg := config.Load()

	var (
		port = flag.String("port", cfg.Port, "HTTP server port")
	)
	flag.Parse()

	log := logger.NewWithLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// The explanation override is optional; without it the engine's
	// deterministic explanation is served as-is.
	var explainer explain.Explainer
	if cfg.ExplainProvider == config.ProviderGemini {
		explainer = explain.NewGemini(cfg.ExplainModel)
		log.Info().Str("model", cfg.ExplainModel).Msg("Gemini explanation override enabled")
	}

	engine := planner.New(planner.UUIDGenerator{}, log)

	planHandler := handlers.NewPlanHandler(engine, explainer, cfg.ExplainTimeout, log)
	ingestHandler := handlers.NewIngestHandler(log)

	mux := http.NewServeMux()

	mux.HandleFunc("/orchestrate/plan", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			planHandler.OrchestratePlan(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/ingest/plaid-transform", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			ingestHandler.TransformFeed(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Apply middleware
	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(mux),
			),
		),
	)

	server := &http.Server{
		Addr:         ":" + *port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", *port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
