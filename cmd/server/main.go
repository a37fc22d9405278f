package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/mailer"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level)

	repo := repository.NewFileMessageRepository(cfg.Store.Path)
	sender := mailer.New(mailer.Config{
		Host:      cfg.Mail.Host,
		Port:      cfg.Mail.Port,
		Address:   cfg.Mail.Address,
		Password:  cfg.Mail.Password,
		Recipient: cfg.Mail.Recipient,
	})
	if cfg.Mail.Address == "" || cfg.Mail.Password == "" {
		slog.Warn("mail credentials not configured; contact notifications disabled")
	}

	contactService := service.NewContactService(repo, sender, cfg.Policy())
	contactHandler := handler.NewContactHandler(contactService)
	messageHandler := handler.NewMessageHandler(contactService)
	portfolioHandler := handler.NewPortfolioHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", handler.Health)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/messages", messageHandler.List)
	mux.HandleFunc("DELETE /api/messages/{id}", messageHandler.Delete)
	mux.HandleFunc("PUT /api/messages/{id}/read", messageHandler.MarkRead)
	mux.HandleFunc("GET /api/projects", portfolioHandler.Projects)
	mux.HandleFunc("GET /api/skills", portfolioHandler.Skills)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("/", handler.NotFound)

	rl := handler.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	var root http.Handler = mux
	root = handler.RequestLogger(root)
	root = rl.Middleware(root)
	root = handler.SecurityHeaders(root)
	root = handler.CORS(cfg.CORS.AllowedOrigin)(root)
	root = handler.Recover(root)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "store", cfg.Store.Path, "policy", cfg.Validation.Policy)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
