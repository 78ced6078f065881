package transport

import (
	"errors"
	"net/http"

	"github.com/Gaurav-Soni24/backend-inventory/internal/middleware"
	"github.com/Gaurav-Soni24/backend-inventory/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NavigationItem is one entry of the dashboard navigation tree.
type NavigationItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

// DashboardHandler handles the read-only dashboard endpoints
type DashboardHandler struct {
	dashboardService service.DashboardService
	authService      service.AuthService
	logger           *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService service.DashboardService, authService service.AuthService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		authService:      authService,
		logger:           logger,
	}
}

// RegisterRoutes registers all dashboard routes. Profile needs the
// authenticated principal; stats and navigation are open.
func (h *DashboardHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/dashboard", func(r chi.Router) {
		r.Get("/stats", h.Stats)
		r.Get("/navigation", h.Navigation)
		r.With(authMiddleware).Get("/profile", h.Profile)
	})
}

// Stats returns the full-collection summary rollups
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute dashboard stats", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, stats)
}

// Navigation returns the static navigation tree for the inventory UI
func (h *DashboardHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	items := []NavigationItem{
		{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
		{Label: "Products", Path: "/products", Icon: "package"},
		{Label: "Stock Logs", Path: "/stock-logs", Icon: "clipboard"},
		{Label: "Reports", Path: "/reports", Icon: "bar-chart"},
		{Label: "Settings", Path: "/settings", Icon: "settings"},
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// Profile returns the authenticated principal's profile
func (h *DashboardHandler) Profile(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "missing authenticated user")
		return
	}

	user, err := h.authService.GetUserByUID(r.Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrUserDataMissing) {
			middleware.RespondWithError(w, http.StatusNotFound, "user data not found")
			return
		}

		h.logger.Error("Failed to load profile", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, UserProfile{
		ID:    user.UID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	})
}
