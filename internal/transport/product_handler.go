package transport

import (
	"errors"
	"net/http"

	"github.com/Gaurav-Soni24/backend-inventory/internal/middleware"
	"github.com/Gaurav-Soni24/backend-inventory/internal/repository"
	"github.com/Gaurav-Soni24/backend-inventory/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateProductRequest represents the product create payload. Numeric
// fields accept numbers or numeric strings; tags accept a list or a
// comma-joined string.
type CreateProductRequest struct {
	Name     string           `json:"name" validate:"required"`
	SKU      string           `json:"sku" validate:"required"`
	Category string           `json:"category" validate:"required"`
	Tags     FlexTags         `json:"tags"`
	Stock    FlexInt          `json:"stock"`
	MinStock FlexInt          `json:"minStock"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
	Supplier string           `json:"supplier"`
}

// UpdateProductRequest represents a partial product update; absent
// fields are left unchanged.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	SKU      *string          `json:"sku"`
	Category *string          `json:"category"`
	Tags     FlexTags         `json:"tags"`
	Stock    *FlexInt         `json:"stock"`
	MinStock *FlexInt         `json:"minStock"`
	Price    *decimal.Decimal `json:"price"`
	Supplier *string          `json:"supplier"`
}

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/search", h.Search)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List returns every product
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// Create persists a new product
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productService.Create(r.Context(), service.CreateProductInput{
		Name:     req.Name,
		SKU:      req.SKU,
		Category: req.Category,
		Tags:     req.Tags,
		Stock:    req.Stock.Int(),
		MinStock: req.MinStock.Int(),
		Price:    *req.Price,
		Supplier: req.Supplier,
	})
	if err != nil {
		h.logger.Error("Failed to create product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	h.logger.Info("Product created", zap.String("product_id", product.ID.String()))
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// Update merges the provided fields into an existing product
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req UpdateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := service.UpdateProductInput{
		Name:     req.Name,
		SKU:      req.SKU,
		Category: req.Category,
		Tags:     req.Tags,
		Price:    req.Price,
		Supplier: req.Supplier,
	}
	if req.Stock != nil {
		stock := req.Stock.Int()
		input.Stock = &stock
	}
	if req.MinStock != nil {
		minStock := req.MinStock.Int()
		input.MinStock = &minStock
	}

	product, err := h.productService.Update(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}

		h.logger.Error("Failed to update product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Delete removes a product
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.productService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}

		h.logger.Error("Failed to delete product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// Search returns products whose name starts with the query string.
// Prefix match only; "pro" does not find "Widget Pro".
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}

	products, err := h.productService.Search(r.Context(), query)
	if err != nil {
		h.logger.Error("Failed to search products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to search products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}
