package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sudhanshu-jha/portfolio-api/internal/common"
	"github.com/sudhanshu-jha/portfolio-api/internal/http/health"
	"github.com/sudhanshu-jha/portfolio-api/internal/http/v1/routes"
	appmiddleware "github.com/sudhanshu-jha/portfolio-api/internal/middleware"
	"github.com/sudhanshu-jha/portfolio-api/internal/platform/firebase"
	"github.com/sudhanshu-jha/portfolio-api/internal/respond"
	analyticssvc "github.com/sudhanshu-jha/portfolio-api/internal/service/analytics"
	contactsvc "github.com/sudhanshu-jha/portfolio-api/internal/service/contact"
	portfoliosvc "github.com/sudhanshu-jha/portfolio-api/internal/service/portfolio"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	// .env is optional; real deployments configure the environment directly.
	_ = godotenv.Load()

	defer func() {
		if err := common.Sync(); err != nil {
			appmiddleware.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := common.Err(); err != nil {
		appmiddleware.LogError(context.Background(), "logger init error", err)
	}

	ctx := context.Background()
	clients, err := firebase.InitializeClients(ctx, firebase.Config{
		ProjectID:                    os.Getenv("FIREBASE_PROJECT_ID"),
		GoogleApplicationCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
	})
	if err != nil {
		appmiddleware.LogFatal(ctx, "firestore init failed", err)
	}

	portfolioService := portfoliosvc.NewFirestoreStore(clients.Firestore)
	contactService := contactsvc.NewFirestoreStore(clients.Firestore)
	analyticsService := analyticssvc.NewFirestoreStore(clients.Firestore)

	seedPortfolio(ctx, portfolioService)

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion from large payloads.
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		appmiddleware.ClientMetadata(),
		appmiddleware.RequestLogger(),
		appmiddleware.AccessLogger(),
		respond.Recoverer(),
	)

	respond.Install()

	cfg := huma.DefaultConfig("Portfolio API", Version)
	cfg.Info.Description = "Backend API for professional portfolio website"
	cfg.DocsPath = "/api-docs"
	cfg.Servers = []*huma.Server{{URL: "/api"}}

	router.Get("/health", health.Handler)
	router.Route("/api", func(r chi.Router) {
		r.Get("/", health.Handler)
		api := humachi.New(r, cfg)
		routes.Register(api, portfolioService, contactService, analyticsService)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		appmiddleware.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		appmiddleware.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		appmiddleware.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appmiddleware.LogError(shutdownCtx, "server shutdown error", err)
	}
	if err := clients.Close(); err != nil {
		appmiddleware.LogError(context.Background(), "firestore close error", err)
	}
	appmiddleware.LogInfo(context.Background(), "server exited")
}

// seedPortfolio writes the default portfolio when none exists yet. A stored
// portfolio is never overwritten at startup; two racing instances both land
// on the same document key, so the worst case is a duplicate identical seed.
func seedPortfolio(ctx context.Context, svc portfoliosvc.Service) {
	_, err := svc.Get(ctx)
	if err == nil {
		appmiddleware.LogInfo(ctx, "portfolio data already exists")
		return
	}
	if !errors.Is(err, portfoliosvc.ErrNotFound) {
		appmiddleware.LogFatal(ctx, "portfolio lookup failed", err)
	}

	appmiddleware.LogInfo(ctx, "no portfolio data found, seeding defaults")
	if err := portfoliosvc.Initialize(ctx, svc); err != nil {
		appmiddleware.LogFatal(ctx, "portfolio seeding failed", err)
	}
	appmiddleware.LogInfo(ctx, "portfolio data initialized")
}
