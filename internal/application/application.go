package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"airstats/internal/config"
	"airstats/internal/domain/service/dashboard"
	"airstats/internal/infrastructure/canvas"
	"airstats/internal/infrastructure/statsapi"
	"airstats/internal/server"
	"airstats/pkg/application/modules"
	"airstats/pkg/contextx"
	"airstats/pkg/logx"
	"airstats/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run поднимает HTTP-сервер страницы, probe и metrics и ждёт отмены ctx.
func Run(ctx context.Context, cfg config.Config) error {
	logger(ctx).Info("application starting",
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	statsAPI, err := statsapi.New(statsapi.Config{
		BaseURL:        cfg.StatsAPI.BaseURL,
		Timeout:        cfg.StatsAPI.Timeout,
		LogFieldMaxLen: cfg.StatsAPI.LogFieldMaxLen,
	}, nil, registry)
	if err != nil {
		return fmt.Errorf("statsapi.New: %w", err)
	}

	canvases := canvas.NewStore(cfg.Chart.CanvasTTL)

	dashboardService := dashboard.NewService(statsAPI, canvases).
		WithChartSize(cfg.Chart.Width, cfg.Chart.Height)

	srv := server.NewServer(
		server.NewDashboardServer(dashboardService, canvases),
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:   cfg.HTTP.ListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, srv.NewRouter(server.RouterOptions{
		LogFieldMaxLen:     cfg.HTTP.LogFieldMaxLen,
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
	}))

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		ReadinessChecks: map[string]probe.ReadinessCheck{
			"stats-api": statsAPI.Ping,
		},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	logger(ctx).Info("application stopped")

	return nil
}
