package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents an item tracked by the inventory app.
// Tags are stored as an ordered list; inputs given as a comma-joined
// string are split at the transport layer before reaching here.
type Product struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Name      string          `json:"name" db:"name"`
	SKU       string          `json:"sku" db:"sku"`
	Category  string          `json:"category" db:"category"`
	Tags      []string        `json:"tags" db:"tags"`
	Stock     int             `json:"stock" db:"stock"`
	MinStock  int             `json:"minStock" db:"min_stock"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Supplier  string          `json:"supplier" db:"supplier"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}

// LowStock reports whether the product is at or below its reorder threshold.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
