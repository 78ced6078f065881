package identity

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the cost factor for credential hashing.
const BcryptCost = 10

// postgresProvider stores credentials in the credentials table, scoped
// by an app namespace column.
type postgresProvider struct {
	db  *sql.DB
	app string
}

// NewPostgresProvider creates a Provider for the given app namespace.
func NewPostgresProvider(db *sql.DB, app string) Provider {
	return &postgresProvider{db: db, app: app}
}

func (p *postgresProvider) CreateCredential(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	uid := uuid.New()
	query := `
		INSERT INTO credentials (uid, app, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (app, email) DO NOTHING
	`

	result, err := p.db.ExecContext(ctx, query, uid, p.app, email, string(hash), time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to create credential: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return "", ErrEmailTaken
	}

	return uid.String(), nil
}

func (p *postgresProvider) VerifyCredential(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(email)

	query := `
		SELECT uid, password_hash
		FROM credentials
		WHERE app = $1 AND email = $2
	`

	var uid uuid.UUID
	var hash string
	err := p.db.QueryRowContext(ctx, query, p.app, email).Scan(&uid, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return uid.String(), nil
}

func (p *postgresProvider) UpdatePassword(ctx context.Context, email, newPassword string) error {
	email = strings.ToLower(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	query := `
		UPDATE credentials
		SET password_hash = $3, updated_at = $4
		WHERE app = $1 AND email = $2
	`

	result, err := p.db.ExecContext(ctx, query, p.app, email, string(hash), time.Now())
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}
