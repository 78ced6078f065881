package transport

import (
	"context"
	"net/http"

	"github.com/Gaurav-Soni24/backend-inventory/internal/domain"
	"github.com/Gaurav-Soni24/backend-inventory/internal/service"

	"github.com/google/uuid"
)

// Function-field stubs for the service interfaces. Tests set only the
// funcs a handler is expected to reach; an unexpected call panics.

type mockProductService struct {
	createFunc func(ctx context.Context, input service.CreateProductInput) (*domain.Product, error)
	updateFunc func(ctx context.Context, id uuid.UUID, input service.UpdateProductInput) (*domain.Product, error)
	deleteFunc func(ctx context.Context, id uuid.UUID) error
	getFunc    func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	listFunc   func(ctx context.Context) ([]*domain.Product, error)
	searchFunc func(ctx context.Context, query string) ([]*domain.Product, error)
}

func (m *mockProductService) Create(ctx context.Context, input service.CreateProductInput) (*domain.Product, error) {
	return m.createFunc(ctx, input)
}

func (m *mockProductService) Update(ctx context.Context, id uuid.UUID, input service.UpdateProductInput) (*domain.Product, error) {
	return m.updateFunc(ctx, id, input)
}

func (m *mockProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockProductService) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return m.getFunc(ctx, id)
}

func (m *mockProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return m.listFunc(ctx)
}

func (m *mockProductService) Search(ctx context.Context, query string) ([]*domain.Product, error) {
	return m.searchFunc(ctx, query)
}

type mockStockService struct {
	createFunc func(ctx context.Context, input service.CreateStockLogInput) (*domain.StockLog, error)
	listFunc   func(ctx context.Context) ([]*domain.StockLog, error)
	searchFunc func(ctx context.Context, logType, date string) ([]*domain.StockLog, error)
}

func (m *mockStockService) CreateStockLog(ctx context.Context, input service.CreateStockLogInput) (*domain.StockLog, error) {
	return m.createFunc(ctx, input)
}

func (m *mockStockService) List(ctx context.Context) ([]*domain.StockLog, error) {
	return m.listFunc(ctx)
}

func (m *mockStockService) Search(ctx context.Context, logType, date string) ([]*domain.StockLog, error) {
	return m.searchFunc(ctx, logType, date)
}

type mockAuthService struct {
	signupFunc       func(ctx context.Context, email, password, name, role string) (*domain.User, error)
	loginFunc        func(ctx context.Context, email, password string) (string, string, *domain.User, error)
	logoutFunc       func(ctx context.Context, refreshToken string) error
	refreshFunc      func(ctx context.Context, refreshToken string) (string, error)
	validateFunc     func(tokenString string) (*service.Claims, error)
	getUserByUIDFunc func(ctx context.Context, uid string) (*domain.User, error)
}

func (m *mockAuthService) Signup(ctx context.Context, email, password, name, role string) (*domain.User, error) {
	return m.signupFunc(ctx, email, password, name, role)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, string, *domain.User, error) {
	return m.loginFunc(ctx, email, password)
}

func (m *mockAuthService) Logout(ctx context.Context, refreshToken string) error {
	return m.logoutFunc(ctx, refreshToken)
}

func (m *mockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	return m.refreshFunc(ctx, refreshToken)
}

func (m *mockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	return m.validateFunc(tokenString)
}

func (m *mockAuthService) GetUserByUID(ctx context.Context, uid string) (*domain.User, error) {
	return m.getUserByUIDFunc(ctx, uid)
}

type mockNoteUserService struct {
	signupFunc        func(ctx context.Context, email, password, firstName, lastName string) (*domain.NoteUser, error)
	loginFunc         func(ctx context.Context, email, password string) (*domain.NoteUser, string, error)
	resetPasswordFunc func(ctx context.Context, email, newPassword string) error
	checkEmailFunc    func(ctx context.Context, email string) (bool, error)
	getProfileFunc    func(ctx context.Context, uid string) (*domain.NoteUser, error)
	updateProfileFunc func(ctx context.Context, uid string, input service.UpdateProfileInput) (*domain.NoteUser, error)
	deactivateFunc    func(ctx context.Context, uid string) error
	getStatsFunc      func(ctx context.Context, uid string) (*domain.NoteStats, error)
	updateStatsFunc   func(ctx context.Context, uid string, input service.UpdateStatsInput) (*domain.NoteStats, error)
	listUsersFunc     func(ctx context.Context, active *bool, page, limit int) (*service.NoteUserPage, error)
}

func (m *mockNoteUserService) Signup(ctx context.Context, email, password, firstName, lastName string) (*domain.NoteUser, error) {
	return m.signupFunc(ctx, email, password, firstName, lastName)
}

func (m *mockNoteUserService) Login(ctx context.Context, email, password string) (*domain.NoteUser, string, error) {
	return m.loginFunc(ctx, email, password)
}

func (m *mockNoteUserService) ResetPassword(ctx context.Context, email, newPassword string) error {
	return m.resetPasswordFunc(ctx, email, newPassword)
}

func (m *mockNoteUserService) CheckEmail(ctx context.Context, email string) (bool, error) {
	return m.checkEmailFunc(ctx, email)
}

func (m *mockNoteUserService) GetProfile(ctx context.Context, uid string) (*domain.NoteUser, error) {
	return m.getProfileFunc(ctx, uid)
}

func (m *mockNoteUserService) UpdateProfile(ctx context.Context, uid string, input service.UpdateProfileInput) (*domain.NoteUser, error) {
	return m.updateProfileFunc(ctx, uid, input)
}

func (m *mockNoteUserService) Deactivate(ctx context.Context, uid string) error {
	return m.deactivateFunc(ctx, uid)
}

func (m *mockNoteUserService) GetStats(ctx context.Context, uid string) (*domain.NoteStats, error) {
	return m.getStatsFunc(ctx, uid)
}

func (m *mockNoteUserService) UpdateStats(ctx context.Context, uid string, input service.UpdateStatsInput) (*domain.NoteStats, error) {
	return m.updateStatsFunc(ctx, uid, input)
}

func (m *mockNoteUserService) ListUsers(ctx context.Context, active *bool, page, limit int) (*service.NoteUserPage, error) {
	return m.listUsersFunc(ctx, active, page, limit)
}

type mockDashboardService struct {
	statsFunc func(ctx context.Context) (*service.DashboardStats, error)
}

func (m *mockDashboardService) Stats(ctx context.Context) (*service.DashboardStats, error) {
	return m.statsFunc(ctx)
}

// passthroughMiddleware stands in for rate limiting and auth wrappers
// that a test does not exercise.
func passthroughMiddleware(next http.Handler) http.Handler {
	return next
}
