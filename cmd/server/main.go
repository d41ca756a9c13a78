package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mockprep/backend/internal/api"
	"github.com/mockprep/backend/internal/auth"
	"github.com/mockprep/backend/internal/canned"
	"github.com/mockprep/backend/internal/infrastructure/config"
	"github.com/mockprep/backend/internal/llm"
	"github.com/mockprep/backend/internal/retry"
	"github.com/mockprep/backend/internal/service"
	"github.com/mockprep/backend/internal/store"

	_ "github.com/mockprep/backend/docs" // swagger docs
)

// @title           MockPrep API
// @version         1.0
// @description     Interview practice: generate questions on a topic, get AI feedback on your answers, and track your scores.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	policy, err := service.ParsePolicy(cfg.GenerationPolicy)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	completer, err := newCompleter(cfg, logger)
	if err != nil {
		logger.Error("failed to create LLM client", "error", err)
		os.Exit(1)
	}

	generation := service.NewGenerationService(completer, canned.Default(), policy, retry.Default(), logger)
	feedback := service.NewFeedbackService(completer, retry.Default(), logger)
	sessions := service.NewSessionService(db, cfg.AnonymousHistory, logger)
	handler := api.NewHandler(generation, feedback, sessions, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → Identity → mux ───────────
	verifier := auth.NewVerifier(cfg.JWTSecret)
	chain := api.Logging(logger)(api.CORS(cfg.CORSOrigin)(api.Identity(verifier)(mux)))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           chain,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Minute, // model calls with retries
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server",
		"address", cfg.ServerAddress,
		"ai_enabled", completer != nil,
		"generation_policy", policy,
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

// newCompleter returns nil when AI is switched off, which puts generation
// and grading in offline mode.
func newCompleter(cfg *config.Config, logger *slog.Logger) (llm.Completer, error) {
	if !cfg.AIEnabled {
		logger.Warn("AI disabled, serving canned questions and heuristic grading")
		return nil, nil
	}

	switch cfg.LLMProvider {
	case "http":
		return llm.NewHTTPClient(cfg.LLMURL, cfg.LLMModel, cfg.LLMAPIKey, cfg.LLMTemperature), nil
	case "langchain":
		c, err := llm.NewLangChainClient(cfg.LLMURL, cfg.LLMModel, cfg.LLMAPIKey, cfg.LLMTemperature)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want \"http\" or \"langchain\")", cfg.LLMProvider)
	}
}
