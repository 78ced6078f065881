package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gaurav-Soni24/backend-inventory/internal/domain"
	"github.com/Gaurav-Soni24/backend-inventory/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidStockType = errors.New("type must be 'in' or 'out'")
	ErrInvalidQuantity  = errors.New("quantity must be a positive number")
)

// CreateStockLogInput carries a validated stock movement request.
// User is the authenticated principal's display name, propagated from
// the request context by the handler.
type CreateStockLogInput struct {
	ProductID   uuid.UUID
	ProductName string
	Type        string
	Quantity    int
	Notes       string
	User        string
}

// StockService applies stock movements to products with their audit log.
type StockService interface {
	CreateStockLog(ctx context.Context, input CreateStockLogInput) (*domain.StockLog, error)
	List(ctx context.Context) ([]*domain.StockLog, error)
	Search(ctx context.Context, logType, date string) ([]*domain.StockLog, error)
}

type stockService struct {
	stockLogRepo repository.StockLogRepository
	productRepo  repository.ProductRepository
	now          func() time.Time
}

// NewStockService creates a new instance of StockService
func NewStockService(stockLogRepo repository.StockLogRepository, productRepo repository.ProductRepository) StockService {
	return &stockService{
		stockLogRepo: stockLogRepo,
		productRepo:  productRepo,
		now:          time.Now,
	}
}

// CreateStockLog records a stock movement and applies its delta to the
// product. The product's existence is verified before anything is
// written, and the log insert plus the stock adjustment commit together,
// so a movement against a missing product leaves no orphan log and
// concurrent movements never lose an update. Stock is not floored at
// zero: an "out" larger than the current stock drives it negative.
func (s *stockService) CreateStockLog(ctx context.Context, input CreateStockLogInput) (*domain.StockLog, error) {
	if input.Type != domain.StockTypeIn && input.Type != domain.StockTypeOut {
		return nil, ErrInvalidStockType
	}
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.productRepo.FindByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	now := s.now()
	log := &domain.StockLog{
		ID:          uuid.New(),
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		Type:        input.Type,
		Quantity:    input.Quantity,
		Date:        now.Format("2006-01-02"),
		Time:        now.Format("15:04:05"),
		User:        input.User,
		Notes:       input.Notes,
		CreatedAt:   now,
	}

	if err := s.stockLogRepo.CreateAndAdjustStock(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to apply stock movement: %w", err)
	}

	return log, nil
}

func (s *stockService) List(ctx context.Context) ([]*domain.StockLog, error) {
	return s.stockLogRepo.List(ctx)
}

func (s *stockService) Search(ctx context.Context, logType, date string) ([]*domain.StockLog, error) {
	return s.stockLogRepo.Search(ctx, logType, date)
}
