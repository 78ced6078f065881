package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stock movement directions.
const (
	StockTypeIn  = "in"
	StockTypeOut = "out"
)

// StockLog records a single stock movement against a product.
// ProductName is a denormalized copy taken at submission time; Date and
// Time are human-readable projections of CreatedAt.
type StockLog struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ProductID   uuid.UUID `json:"productId" db:"product_id"`
	ProductName string    `json:"productName" db:"product_name"`
	Type        string    `json:"type" db:"type"`
	Quantity    int       `json:"quantity" db:"quantity"`
	Date        string    `json:"date" db:"date"`
	Time        string    `json:"time" db:"time"`
	User        string    `json:"user" db:"created_by"`
	Notes       string    `json:"notes" db:"notes"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Delta returns the signed stock change this log applies: positive for
// "in" movements, negative for "out".
func (l *StockLog) Delta() int {
	if l.Type == StockTypeOut {
		return -l.Quantity
	}
	return l.Quantity
}
