package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"purl/internal/nba"
	"purl/internal/platform/config"
	"purl/internal/platform/httpserver"
	"purl/internal/platform/logger"
	"purl/internal/platform/telemetry"
	"purl/internal/purl/handler"
	"purl/internal/purl/metrics"
	"purl/internal/purl/resolver"
	"purl/internal/purl/service"
	"purl/pkg/platform/middleware/logging"
	"purl/pkg/platform/middleware/metadata"
	"purl/pkg/platform/middleware/recovery"
	"purl/pkg/platform/middleware/requestid"
	"purl/pkg/platform/middleware/requesttime"
)

const appName = "purl"

// Set through -ldflags at build time.
var (
	version   = "dev"
	gitCommit = ""
	buildDate = ""
)

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildInfo() handler.BuildInfo {
	return handler.BuildInfo{
		Application: appName,
		Version:     version,
		GitCommit:   gitCommit,
		BuildDate:   buildDate,
		GoVersion:   runtime.Version(),
	}
}

func rootCmd() *cobra.Command {
	server := config.FromEnv()

	serve := func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), server)
	}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Persistent URL resolver for Naturalis specimens and observations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	cmd.PersistentFlags().StringVarP(&server.ConfigPath, "config", "c", server.ConfigPath, "Properties file (YAML)")
	cmd.PersistentFlags().StringVar(&server.Addr, "addr", server.Addr, "Listen address")
	cmd.PersistentFlags().StringVar(&server.LogLevel, "log-level", server.LogLevel, "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the PURL server",
		RunE:  serve,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			info := buildInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit: %s, built: %s, %s)\n",
				info.Application, info.Version, info.GitCommit, info.BuildDate, info.GoVersion)
		},
	})
	return cmd
}

// run wires high-level dependencies, exposes the HTTP router, and keeps the server
// lifecycle small. Resolution logic lives in internal/purl.
func run(ctx context.Context, server config.Server) error {
	log := logger.New(server.LogLevel)
	slog.SetDefault(log)

	cfg, err := config.Load(server)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	exporters, err := telemetry.ExporterFromEnv(ctx, log)
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	shutdownTracing, err := telemetry.Init(appName, exporters...)
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	purlMetrics := metrics.New(registry)

	res, err := resolver.New(cfg)
	if err != nil {
		return fmt.Errorf("build resolver: %w", err)
	}
	lookup := nba.New(cfg.NBABaseURL(), server.NBATimeout, nba.WithLogger(log))
	svc := service.New(lookup, res, service.WithLogger(log), service.WithMetrics(purlMetrics))

	router := newRouter(log, registry, handler.New(svc, log), handler.NewSystem(buildInfo()))
	srv := httpserver.New(server.Addr, router, server.NBATimeout, log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting purl server",
			"addr", server.Addr,
			"version", version,
			"nba_base_url", cfg.NBABaseURL(),
			"purl_base_url", cfg.PURLBaseURL(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return shutdownTracing(shutdownCtx)
	})
	return g.Wait()
}

func newRouter(log *slog.Logger, registry *prometheus.Registry, purls *handler.Handler, system *handler.SystemHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware(time.Now))
	r.Use(metadata.ClientMetadata)
	r.Use(logging.Middleware(log))
	r.Use(recovery.Middleware(log))
	r.Use(telemetry.HTTPMiddleware(appName))
	r.Use(chimiddleware.GetHead)

	system.Register(r)
	purls.Register(r)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	return r
}
