package dashboard

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/vilaca/x-affiliates/internal/api"
	"github.com/vilaca/x-affiliates/internal/auth"
	"github.com/vilaca/x-affiliates/internal/domain"
)

// Route paths served by the Handler.
const (
	HomePath      = "/"
	DashboardPath = "/dashboard"
	HealthPath    = "/healthz"
	MetricsPath   = "/metrics"
)

// AffiliationService resolves the signed-in user and their organization's affiliates.
type AffiliationService interface {
	ResolveProfile(ctx context.Context, token string) (*domain.UserProfile, string, error)
	ListAffiliates(ctx context.Context, token, orgID string) ([]domain.UserProfile, error)
}

// DashboardRecorder observes rendered dashboards.
type DashboardRecorder interface {
	RecordDashboard(affiliates int, enumerationFailed bool)
}

type noopRecorder struct{}

func (noopRecorder) RecordDashboard(int, bool) {}

// HandlerConfig holds configuration for creating a new Handler.
type HandlerConfig struct {
	Renderer           Renderer
	Logger             logrus.FieldLogger
	AffiliationService AffiliationService
	// Auth gets the first look at every request. Nil means auth.Passthrough.
	Auth auth.Middleware
	// Metrics and MetricsHandler are optional.
	Metrics        DashboardRecorder
	MetricsHandler http.Handler
}

// Handler handles HTTP requests for the dashboard.
type Handler struct {
	renderer Renderer
	logger   logrus.FieldLogger
	service  AffiliationService
	auth     auth.Middleware
	metrics  DashboardRecorder
	router   *mux.Router
}

// NewHandler creates a new Handler with injected dependencies.
func NewHandler(cfg HandlerConfig) *Handler {
	h := &Handler{
		renderer: cfg.Renderer,
		logger:   cfg.Logger,
		service:  cfg.AffiliationService,
		auth:     cfg.Auth,
		metrics:  cfg.Metrics,
	}
	if h.logger == nil {
		h.logger = logrus.StandardLogger()
	}
	if h.auth == nil {
		h.auth = auth.Passthrough{}
	}
	if h.metrics == nil {
		h.metrics = noopRecorder{}
	}

	h.router = mux.NewRouter()
	h.router.HandleFunc(HomePath, h.handleHome)
	h.router.HandleFunc(DashboardPath, h.handleDashboard)
	h.router.HandleFunc(HealthPath, h.handleHealth).Methods(http.MethodGet)
	if cfg.MetricsHandler != nil {
		h.router.Handle(MetricsPath, cfg.MetricsHandler).Methods(http.MethodGet)
	}
	h.router.NotFoundHandler = http.HandlerFunc(handleNotFound)

	return h
}

// ServeHTTP lets the auth middleware answer first, then dispatches to the router.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.auth.TryHandle(w, r) {
		return
	}
	h.router.ServeHTTP(w, r)
}

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := h.renderer.RenderHome(w, auth.Credential(r) != ""); err != nil {
		h.logger.WithError(err).Error("failed to render home page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// handleDashboard resolves the user, lists the organization's affiliates
// when there is one, and renders the result.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	token := auth.Credential(r)
	if token == "" {
		http.Redirect(w, r, auth.LoginPath, http.StatusFound)
		return
	}

	ctx := r.Context()
	user, orgID, err := h.service.ResolveProfile(ctx, token)
	if err != nil {
		errorLogger(h.logger, err).Error("failed to resolve profile")
		h.renderError(w, err.Error())
		return
	}

	affiliates := []domain.UserProfile{}
	enumerationFailed := false
	if orgID != "" {
		list, err := h.service.ListAffiliates(ctx, token, orgID)
		if err != nil {
			errorLogger(h.logger, err).WithField("org_id", orgID).Warn("failed to list affiliates")
			// Continue with an empty team
			enumerationFailed = true
		} else {
			affiliates = list
		}
	}
	h.metrics.RecordDashboard(len(affiliates), enumerationFailed)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	view := DashboardView{User: *user, OrganizationID: orgID, Affiliates: affiliates}
	if err := h.renderer.RenderDashboard(w, view); err != nil {
		h.logger.WithError(err).Error("failed to render dashboard")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.renderer.RenderHealth(w); err != nil {
		h.logger.WithError(err).Error("failed to render health")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// errorLogger attaches err and, for X API failures, the upstream status.
func errorLogger(logger logrus.FieldLogger, err error) logrus.FieldLogger {
	entry := logger.WithError(err)
	if upstreamErr, ok := api.IsUpstreamError(err); ok {
		entry = entry.WithField("upstream_status", upstreamErr.StatusCode)
	}
	return entry
}

func (h *Handler) renderError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)

	if err := h.renderer.RenderError(w, message); err != nil {
		h.logger.WithError(err).Error("failed to render error page")
	}
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("Not Found"))
}
