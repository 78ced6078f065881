package transport

import (
	"errors"
	"net/http"

	"github.com/Gaurav-Soni24/backend-inventory/internal/middleware"
	"github.com/Gaurav-Soni24/backend-inventory/internal/repository"
	"github.com/Gaurav-Soni24/backend-inventory/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateStockLogRequest represents a stock movement submission.
type CreateStockLogRequest struct {
	ProductID   string   `json:"productId" validate:"required"`
	ProductName string   `json:"productName" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=in out"`
	Quantity    *FlexInt `json:"quantity" validate:"required"`
	Notes       string   `json:"notes"`
}

// StockLogHandler handles HTTP requests for stock movements
type StockLogHandler struct {
	stockService service.StockService
	logger       *zap.Logger
}

// NewStockLogHandler creates a new StockLogHandler
func NewStockLogHandler(stockService service.StockService, logger *zap.Logger) *StockLogHandler {
	return &StockLogHandler{
		stockService: stockService,
		logger:       logger,
	}
}

// RegisterRoutes registers all stock log routes. Creation requires an
// authenticated principal so movements are attributed to a real user.
func (h *StockLogHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/stock-logs", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/search", h.Search)
		r.With(authMiddleware).Post("/", h.Create)
	})
}

// Create records a stock movement and applies it to the product
func (h *StockLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateStockLogRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Stock log validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	userName, _ := middleware.GetUserName(r.Context())
	if userName == "" {
		// Tokens minted before the name claim existed.
		userName, _ = middleware.GetUserID(r.Context())
	}

	log, err := h.stockService.CreateStockLog(r.Context(), service.CreateStockLogInput{
		ProductID:   productID,
		ProductName: req.ProductName,
		Type:        req.Type,
		Quantity:    req.Quantity.Int(),
		Notes:       req.Notes,
		User:        userName,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		case errors.Is(err, service.ErrInvalidStockType), errors.Is(err, service.ErrInvalidQuantity):
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("Failed to create stock log", zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create stock log")
		}
		return
	}

	h.logger.Info("Stock movement applied",
		zap.String("product_id", log.ProductID.String()),
		zap.String("type", log.Type),
		zap.Int("quantity", log.Quantity),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, log)
}

// List returns every stock log, newest first
func (h *StockLogHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.stockService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list stock logs", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list stock logs")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, logs)
}

// Search filters stock logs by type and/or date
func (h *StockLogHandler) Search(w http.ResponseWriter, r *http.Request) {
	logType := r.URL.Query().Get("type")
	date := r.URL.Query().Get("date")

	if logType != "" && logType != "in" && logType != "out" {
		middleware.RespondWithError(w, http.StatusBadRequest, "type must be 'in' or 'out'")
		return
	}

	logs, err := h.stockService.Search(r.Context(), logType, date)
	if err != nil {
		h.logger.Error("Failed to search stock logs", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to search stock logs")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, logs)
}
