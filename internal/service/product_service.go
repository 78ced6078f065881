package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Gaurav-Soni24/backend-inventory/internal/domain"
	"github.com/Gaurav-Soni24/backend-inventory/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput carries a validated, type-coerced create request.
type CreateProductInput struct {
	Name     string
	SKU      string
	Category string
	Tags     []string
	Stock    int
	MinStock int
	Price    decimal.Decimal
	Supplier string
}

// UpdateProductInput carries a partial update; nil fields are left as-is.
type UpdateProductInput struct {
	Name     *string
	SKU      *string
	Category *string
	Tags     []string
	Stock    *int
	MinStock *int
	Price    *decimal.Decimal
	Supplier *string
}

// ProductService defines the interface for product business logic
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Search(ctx context.Context, query string) ([]*domain.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	now := time.Now()
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	product := &domain.Product{
		ID:        uuid.New(),
		Name:      input.Name,
		SKU:       input.SKU,
		Category:  input.Category,
		Tags:      tags,
		Stock:     input.Stock,
		MinStock:  input.MinStock,
		Price:     input.Price,
		Supplier:  input.Supplier,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// Update merges the provided fields over the stored product and writes
// the result back.
func (s *productService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.SKU != nil {
		product.SKU = *input.SKU
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.MinStock != nil {
		product.MinStock = *input.MinStock
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Supplier != nil {
		product.Supplier = *input.Supplier
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *productService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *productService) Search(ctx context.Context, query string) ([]*domain.Product, error) {
	return s.productRepo.SearchByNamePrefix(ctx, query)
}
