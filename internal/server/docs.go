package server

import (
	"net/http"

	custommiddleware "github.com/Gaurav-Soni24/backend-inventory/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// routeDoc describes one endpoint for the docs index.
type routeDoc struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

func registerDocsRoute(router chi.Router) {
	docs := []routeDoc{
		{"POST", "/api/auth/signup", "Register an inventory-app account"},
		{"POST", "/api/auth/login", "Authenticate and receive a token pair"},
		{"POST", "/api/auth/refresh", "Exchange a refresh token for a new access token"},
		{"POST", "/api/auth/logout", "Revoke a refresh token"},
		{"GET", "/api/products", "List all products"},
		{"POST", "/api/products", "Create a product"},
		{"PUT", "/api/products/{id}", "Update a product"},
		{"DELETE", "/api/products/{id}", "Delete a product"},
		{"GET", "/api/products/search?q=", "Prefix search on product name"},
		{"GET", "/api/stock-logs", "List all stock movements"},
		{"POST", "/api/stock-logs", "Record a stock movement (requires auth)"},
		{"GET", "/api/stock-logs/search?type=&date=", "Filter stock movements"},
		{"GET", "/api/dashboard/stats", "Inventory summary statistics"},
		{"GET", "/api/dashboard/navigation", "Navigation tree for the UI"},
		{"GET", "/api/dashboard/profile", "Authenticated principal's profile"},
		{"POST", "/api/neural-note/auth/signup", "Register a notes-app account"},
		{"POST", "/api/neural-note/auth/login", "Authenticate a notes-app account"},
		{"POST", "/api/neural-note/auth/reset-password", "Rotate a notes-app credential"},
		{"GET", "/api/neural-note/auth/check-email/{email}", "Check whether an email is registered"},
		{"GET", "/api/neural-note/user/profile/{userId}", "Fetch a notes-app profile"},
		{"PUT", "/api/neural-note/user/profile/{userId}", "Partially update a notes-app profile"},
		{"DELETE", "/api/neural-note/user/{userId}", "Soft-delete a notes-app account"},
		{"GET", "/api/neural-note/user/stats/{userId}", "Fetch per-user counters"},
		{"PUT", "/api/neural-note/user/stats/{userId}", "Update per-user counters"},
		{"GET", "/api/neural-note/admin/users?page=&limit=&active=", "Paginated account listing (admin)"},
		{"GET", "/api/health", "Service and database health"},
	}

	router.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		custommiddleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"name":   "backend-inventory",
			"routes": docs,
		})
	})
}
