package service

import (
	"context"
	"strings"
	"time"

	"github.com/Gaurav-Soni24/backend-inventory/internal/domain"
	"github.com/Gaurav-Soni24/backend-inventory/internal/identity"
	"github.com/Gaurav-Soni24/backend-inventory/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// In-memory fakes implementing the repository and identity interfaces.

type mockIdentityProvider struct {
	creds map[string]string // email -> password
	uids  map[string]string // email -> uid
}

func newMockIdentityProvider() *mockIdentityProvider {
	return &mockIdentityProvider{
		creds: make(map[string]string),
		uids:  make(map[string]string),
	}
}

func (m *mockIdentityProvider) CreateCredential(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(email)
	if _, exists := m.creds[email]; exists {
		return "", identity.ErrEmailTaken
	}
	uid := uuid.New().String()
	m.creds[email] = password
	m.uids[email] = uid
	return uid, nil
}

func (m *mockIdentityProvider) VerifyCredential(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(email)
	stored, exists := m.creds[email]
	if !exists || stored != password {
		return "", identity.ErrInvalidCredentials
	}
	return m.uids[email], nil
}

func (m *mockIdentityProvider) UpdatePassword(ctx context.Context, email, newPassword string) error {
	email = strings.ToLower(email)
	if _, exists := m.creds[email]; !exists {
		return identity.ErrCredentialNotFound
	}
	m.creds[email] = newPassword
	return nil
}

type mockUserRepository struct {
	users map[string]*domain.User // uid -> user
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*domain.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.users[user.UID] = user
	return nil
}

func (m *mockUserRepository) FindByUID(ctx context.Context, uid string) (*domain.User, error) {
	user, exists := m.users[uid]
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

type mockRefreshTokenRepository struct {
	tokens map[string]*domain.RefreshToken
}

func newMockRefreshTokenRepository() *mockRefreshTokenRepository {
	return &mockRefreshTokenRepository{tokens: make(map[string]*domain.RefreshToken)}
}

func (m *mockRefreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	m.tokens[token.Token] = token
	return nil
}

func (m *mockRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	refreshToken, exists := m.tokens[token]
	if !exists {
		return nil, repository.ErrRefreshTokenNotFound
	}
	if refreshToken.Revoked {
		return nil, repository.ErrRefreshTokenRevoked
	}
	return refreshToken, nil
}

func (m *mockRefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	refreshToken, exists := m.tokens[token]
	if !exists {
		return repository.ErrRefreshTokenNotFound
	}
	refreshToken.Revoked = true
	return nil
}

type mockProductRepository struct {
	products map[uuid.UUID]*domain.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[uuid.UUID]*domain.Product)}
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if _, exists := m.products[product.ID]; !exists {
		return repository.ErrProductNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, exists := m.products[id]; !exists {
		return repository.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, exists := m.products[id]
	if !exists {
		return nil, repository.ErrProductNotFound
	}
	return product, nil
}

func (m *mockProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for _, p := range m.products {
		products = append(products, p)
	}
	return products, nil
}

func (m *mockProductRepository) SearchByNamePrefix(ctx context.Context, query string) ([]*domain.Product, error) {
	q := strings.ToLower(query)
	products := []*domain.Product{}
	for _, p := range m.products {
		if strings.HasPrefix(strings.ToLower(p.Name), q) {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *mockProductRepository) Aggregates(ctx context.Context) (*repository.ProductAggregates, error) {
	agg := &repository.ProductAggregates{}
	categories := make(map[string]bool)
	suppliers := make(map[string]bool)
	for _, p := range m.products {
		agg.TotalProducts++
		agg.TotalValue = agg.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		categories[p.Category] = true
		if p.Supplier != "" {
			suppliers[p.Supplier] = true
		}
		if p.LowStock() {
			agg.LowStockCount++
		}
	}
	agg.Categories = len(categories)
	agg.Suppliers = len(suppliers)
	return agg, nil
}

type mockStockLogRepository struct {
	logs     []*domain.StockLog
	products *mockProductRepository
}

func newMockStockLogRepository(products *mockProductRepository) *mockStockLogRepository {
	return &mockStockLogRepository{products: products}
}

func (m *mockStockLogRepository) CreateAndAdjustStock(ctx context.Context, log *domain.StockLog) error {
	product, exists := m.products.products[log.ProductID]
	if !exists {
		return repository.ErrProductNotFound
	}
	m.logs = append(m.logs, log)
	product.Stock += log.Delta()
	product.UpdatedAt = log.CreatedAt
	return nil
}

func (m *mockStockLogRepository) List(ctx context.Context) ([]*domain.StockLog, error) {
	return m.logs, nil
}

func (m *mockStockLogRepository) Search(ctx context.Context, logType, date string) ([]*domain.StockLog, error) {
	logs := []*domain.StockLog{}
	for _, l := range m.logs {
		if logType != "" && l.Type != logType {
			continue
		}
		if date != "" && l.Date != date {
			continue
		}
		logs = append(logs, l)
	}
	return logs, nil
}

func (m *mockStockLogRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	count := 0
	for _, l := range m.logs {
		if !l.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

type mockNoteUserRepository struct {
	users map[string]*domain.NoteUser // uid -> user
}

func newMockNoteUserRepository() *mockNoteUserRepository {
	return &mockNoteUserRepository{users: make(map[string]*domain.NoteUser)}
}

func (m *mockNoteUserRepository) Create(ctx context.Context, user *domain.NoteUser) error {
	m.users[user.UID] = user
	return nil
}

func (m *mockNoteUserRepository) FindByUID(ctx context.Context, uid string) (*domain.NoteUser, error) {
	user, exists := m.users[uid]
	if !exists {
		return nil, repository.ErrNoteUserNotFound
	}
	return user, nil
}

func (m *mockNoteUserRepository) FindByEmail(ctx context.Context, email string) (*domain.NoteUser, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrNoteUserNotFound
}

func (m *mockNoteUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, user := range m.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockNoteUserRepository) Update(ctx context.Context, user *domain.NoteUser) error {
	if _, exists := m.users[user.UID]; !exists {
		return repository.ErrNoteUserNotFound
	}
	m.users[user.UID] = user
	return nil
}

func (m *mockNoteUserRepository) TouchLastLogin(ctx context.Context, uid string, at time.Time) error {
	user, exists := m.users[uid]
	if !exists {
		return repository.ErrNoteUserNotFound
	}
	user.Stats.LastLogin = &at
	return nil
}

func (m *mockNoteUserRepository) SoftDelete(ctx context.Context, uid string, at time.Time) error {
	user, exists := m.users[uid]
	if !exists || !user.IsActive {
		return repository.ErrNoteUserNotFound
	}
	user.IsActive = false
	user.DeletedAt = &at
	user.UpdatedAt = at
	return nil
}

func (m *mockNoteUserRepository) ListAll(ctx context.Context, active *bool) ([]*domain.NoteUser, error) {
	users := []*domain.NoteUser{}
	for _, user := range m.users {
		if active != nil && user.IsActive != *active {
			continue
		}
		users = append(users, user)
	}
	return users, nil
}
