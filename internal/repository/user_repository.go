package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Gaurav-Soni24/backend-inventory/internal/domain"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for inventory-app user profiles.
// The uid key comes from the identity provider; this table only holds
// the profile document.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUID(ctx context.Context, uid string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user profile using parameterized queries
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (uid, email, name, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		user.UID,
		user.Email,
		user.Name,
		user.Role,
		user.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// FindByUID retrieves a user profile by its identity-provider uid
func (r *userRepository) FindByUID(ctx context.Context, uid string) (*domain.User, error) {
	query := `
		SELECT uid, email, name, role, created_at
		FROM users
		WHERE uid = $1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, uid))
}

// FindByEmail retrieves a user profile by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT uid, email, name, role, created_at
		FROM users
		WHERE email = $1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(
		&user.UID,
		&user.Email,
		&user.Name,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
