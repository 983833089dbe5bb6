package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/vilaca/x-affiliates/internal/api"
	"github.com/vilaca/x-affiliates/internal/api/x"
	"github.com/vilaca/x-affiliates/internal/auth"
	"github.com/vilaca/x-affiliates/internal/config"
	"github.com/vilaca/x-affiliates/internal/dashboard"
	"github.com/vilaca/x-affiliates/internal/httputil"
	"github.com/vilaca/x-affiliates/internal/observability"
	"github.com/vilaca/x-affiliates/internal/service"
)

const (
	serviceName     = "x-affiliates"
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		logrus.Fatalf("Failed to create logger: %v", err)
	}

	metrics := observability.NewMetrics(nil)

	tracing, err := observability.NewTracing(context.Background(), observability.TracingConfig{
		ServiceName: serviceName,
		Endpoint:    cfg.TracingEndpoint,
		Insecure:    cfg.TracingInsecure,
	}, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to set up tracing")
	}
	tracing.SetGlobal()

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           buildServer(cfg, logger, metrics, tracing),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.WithField("addr", cfg.Addr()).Info("starting X affiliates dashboard")
	if cfg.HasOAuthConfig() {
		logger.WithField("redirect_url", cfg.RedirectURL).Info("X OAuth login enabled")
	} else {
		logger.Warn("X_CLIENT_ID not set, /login is disabled; pass a token with ?apiKey=")
	}
	if cfg.MaxAffiliatePages > 0 {
		logger.WithField("max_pages", cfg.MaxAffiliatePages).Info("affiliate pagination capped")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
	if err := tracing.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("failed to flush traces")
	}
}

// buildServer wires up all dependencies and returns the configured HTTP handler.
// This is the composition root where all dependencies are created and injected.
func buildServer(cfg *config.Config, logger *logrus.Logger, metrics *observability.Metrics, tracing *observability.Tracing) http.Handler {
	otelOpts := []otelhttp.Option{
		otelhttp.WithTracerProvider(tracing.TracerProvider),
		otelhttp.WithPropagators(tracing.Propagator),
	}

	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(metrics.InstrumentTransport(http.DefaultTransport), otelOpts...),
		Timeout:   time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
	}

	xClient := x.NewClient(api.ClientConfig{BaseURL: cfg.APIBaseURL}, httpClient)
	affiliationService := service.NewAffiliationService(xClient, cfg.MaxAffiliatePages)

	var authMiddleware auth.Middleware = auth.Passthrough{}
	if cfg.HasOAuthConfig() {
		authMiddleware = auth.NewXOAuth(auth.OAuthConfig{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			AuthURL:      cfg.AuthURL,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.GetScopes(),
			CookieSecure: cfg.CookieSecure,
		}, httpClient, logger)
	}

	handler := dashboard.NewHandler(dashboard.HandlerConfig{
		Renderer:           dashboard.NewHTMLRenderer(),
		Logger:             logger,
		AffiliationService: affiliationService,
		Auth:               authMiddleware,
		Metrics:            metrics,
		MetricsHandler:     metrics.Handler(),
	})

	routeOf := httputil.KnownRoutes(
		dashboard.HomePath, dashboard.DashboardPath, dashboard.HealthPath, dashboard.MetricsPath,
		auth.LoginPath, auth.CallbackPath, auth.LogoutPath,
	)

	chain := httputil.ServerMiddleware(logger, metrics, routeOf)

	return otelhttp.NewHandler(chain(handler), serviceName, otelOpts...)
}
