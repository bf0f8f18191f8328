package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/polybius/polybius-go/internal/config"
	"github.com/polybius/polybius-go/internal/handler"
	"github.com/polybius/polybius-go/internal/metrics"
	"github.com/polybius/polybius-go/internal/middleware"
	"github.com/polybius/polybius-go/internal/service"
)

func serveCmd(cfg *config.Config) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the password generation API",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := *cfg
			if cmd.Flags().Changed("port") {
				c.Port = port
			}
			return serve(c)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to listen on (overrides PORT)")
	return cmd
}

// limitsFromConfig overlays configured values on the default limits.
func limitsFromConfig(cfg config.Config) service.Limits {
	limits := service.DefaultLimits()
	limits.DefaultBits = cfg.DefaultBits
	limits.MaxBits = cfg.MaxBits
	limits.DefaultCount = cfg.DefaultCount
	limits.MaxCount = cfg.MaxCount
	return limits
}

// newRouter wires handlers and middleware. The caller owns the limiter.
func newRouter(genService *service.GeneratorService, limiter *middleware.RateLimiter, gatherer prometheus.Gatherer) http.Handler {
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler(gatherer))

	r.Get("/api/v1/categories", genHandler.HandleCategories)
	r.Group(func(r chi.Router) {
		r.Use(limiter.Handler)
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	return r
}

func serve(cfg config.Config) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	genService := service.NewGeneratorService(limitsFromConfig(cfg), nil, metrics.New(reg))

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(genService, limiter, reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		slog.Error("server error", "error", err)
		return err
	case <-quit:
	}

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		return err
	}

	slog.Info("server stopped")
	return nil
}
