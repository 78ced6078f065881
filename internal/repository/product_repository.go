package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Gaurav-Soni24/backend-inventory/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// searchSentinel closes the prefix range: every name starting with the
// query sorts below query+sentinel. U+FFF8 is above any character that
// appears in real product names.
const searchSentinel = "￸"

// ProductAggregates holds the full-collection rollups behind the
// dashboard. Computed store-side in one scan.
type ProductAggregates struct {
	TotalProducts int
	TotalValue    decimal.Decimal
	Categories    int
	Suppliers     int
	LowStockCount int
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	SearchByNamePrefix(ctx context.Context, query string) ([]*domain.Product, error)
	Aggregates(ctx context.Context) (*ProductAggregates, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product into the database using parameterized queries
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	tags, err := json.Marshal(product.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	query := `
		INSERT INTO products (id, name, sku, category, tags, stock, min_stock, price, supplier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.SKU,
		product.Category,
		tags,
		product.Stock,
		product.MinStock,
		product.Price,
		product.Supplier,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// Update updates an existing product in the database using parameterized queries
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	tags, err := json.Marshal(product.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	query := `
		UPDATE products
		SET name = $2, sku = $3, category = $4, tags = $5, stock = $6,
		    min_stock = $7, price = $8, supplier = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.SKU,
		product.Category,
		tags,
		product.Stock,
		product.MinStock,
		product.Price,
		product.Supplier,
		product.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete removes a product from the database using parameterized queries
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// FindByID retrieves a product by ID using parameterized queries
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `
		SELECT id, name, sku, category, tags, stock, min_stock, price, supplier, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// List returns every product, newest first.
func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT id, name, sku, category, tags, stock, min_stock, price, supplier, created_at, updated_at
		FROM products
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// SearchByNamePrefix returns products whose lower-cased name starts with
// the lower-cased query, via a lexicographic range scan bounded by the
// sentinel. Prefix-only: "widget" matches "Widget Pro" but "pro" does not.
// The comparisons collate byte-wise so the range stays a prefix match
// regardless of the cluster locale.
func (r *productRepository) SearchByNamePrefix(ctx context.Context, query string) ([]*domain.Product, error) {
	q := strings.ToLower(query)

	stmt := `
		SELECT id, name, sku, category, tags, stock, min_stock, price, supplier, created_at, updated_at
		FROM products
		WHERE LOWER(name) COLLATE "C" >= $1 AND LOWER(name) COLLATE "C" < $2
		ORDER BY LOWER(name) COLLATE "C"
	`

	rows, err := r.db.QueryContext(ctx, stmt, q, q+searchSentinel)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// Aggregates computes the dashboard rollups over the whole products
// table. One full scan per call; fine at current volumes but a ceiling
// if the catalog grows large.
func (r *productRepository) Aggregates(ctx context.Context) (*ProductAggregates, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(stock * price), 0),
			COUNT(DISTINCT category),
			COUNT(DISTINCT supplier) FILTER (WHERE supplier <> ''),
			COUNT(*) FILTER (WHERE stock <= min_stock)
		FROM products
	`

	agg := &ProductAggregates{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&agg.TotalProducts,
		&agg.TotalValue,
		&agg.Categories,
		&agg.Suppliers,
		&agg.LowStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate products: %w", err)
	}

	return agg, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	var tags []byte

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.SKU,
		&product.Category,
		&tags,
		&product.Stock,
		&product.MinStock,
		&product.Price,
		&product.Supplier,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(tags, &product.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}

	return product, nil
}

func collectProducts(rows *sql.Rows) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}
