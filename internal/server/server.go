package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Gaurav-Soni24/backend-inventory/internal/config"
	"github.com/Gaurav-Soni24/backend-inventory/internal/database"
	"github.com/Gaurav-Soni24/backend-inventory/internal/identity"
	custommiddleware "github.com/Gaurav-Soni24/backend-inventory/internal/middleware"
	"github.com/Gaurav-Soni24/backend-inventory/internal/repository"
	"github.com/Gaurav-Soni24/backend-inventory/internal/service"
	"github.com/Gaurav-Soni24/backend-inventory/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App namespaces for the identity provider. The two apps keep fully
// disjoint credential sets.
const (
	inventoryApp = "inventory"
	notesApp     = "neural-note"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *database.Service
	redis  *redis.Client
}

// NewServer wires repositories, services and handlers around the shared
// database handle and returns a ready-to-listen HTTP server. All
// dependencies are constructed here and injected; nothing lives in
// package state.
func NewServer(cfg *config.Config, logger *zap.Logger, db *database.Service) *Server {
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware())
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Initialize adapters
	sqlDB := db.DB()
	inventoryIdentity := identity.NewPostgresProvider(sqlDB, inventoryApp)
	notesIdentity := identity.NewPostgresProvider(sqlDB, notesApp)

	// Initialize repositories
	userRepo := repository.NewUserRepository(sqlDB)
	refreshTokenRepo := repository.NewRefreshTokenRepository(sqlDB)
	productRepo := repository.NewProductRepository(sqlDB)
	stockLogRepo := repository.NewStockLogRepository(sqlDB)
	noteUserRepo := repository.NewNoteUserRepository(sqlDB)

	// Initialize services
	authService := service.NewAuthService(
		inventoryIdentity,
		userRepo,
		refreshTokenRepo,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshExpiry)*24*time.Hour,
	)
	productService := service.NewProductService(productRepo)
	stockService := service.NewStockService(stockLogRepo, productRepo)
	dashboardService := service.NewDashboardService(productRepo, stockLogRepo)
	noteService := service.NewNoteUserService(notesIdentity, noteUserRepo, cfg.JWT.Secret)

	// Shared middleware
	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)
	adminMiddleware := custommiddleware.RequireAdmin(logger)
	loginLimiter := custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
		RequestsPerWindow: cfg.RateLimit.LoginRequests,
		Window:            time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		KeyPrefix:         "login_rate_limit",
	}, logger)

	// Register routes
	transport.NewAuthHandler(authService, logger).RegisterRoutes(router, loginLimiter)
	transport.NewProductHandler(productService, logger).RegisterRoutes(router)
	transport.NewStockLogHandler(stockService, logger).RegisterRoutes(router, authMiddleware)
	transport.NewDashboardHandler(dashboardService, authService, logger).RegisterRoutes(router, authMiddleware)
	transport.NewNoteHandler(noteService, logger).RegisterRoutes(router, authMiddleware, adminMiddleware, loginLimiter)

	registerHealthRoute(router, db)
	registerDocsRoute(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}

	return server
}

func registerHealthRoute(router chi.Router, db *database.Service) {
	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		health := db.Health(r.Context())
		status := http.StatusOK
		if health["status"] != "up" {
			status = http.StatusServiceUnavailable
		}
		custommiddleware.RespondWithJSON(w, status, map[string]interface{}{
			"status":   "ok",
			"database": health,
		})
	})
}

// Close releases server resources after Shutdown has drained requests.
func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
