package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Gaurav-Soni24/backend-inventory/internal/domain"
)

var (
	ErrNoteUserNotFound = errors.New("note user not found")
)

// NoteUserRepository defines the interface for notes-app user profiles.
// Emails are stored lower-cased; callers normalize before lookups.
type NoteUserRepository interface {
	Create(ctx context.Context, user *domain.NoteUser) error
	FindByUID(ctx context.Context, uid string) (*domain.NoteUser, error)
	FindByEmail(ctx context.Context, email string) (*domain.NoteUser, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *domain.NoteUser) error
	TouchLastLogin(ctx context.Context, uid string, at time.Time) error

	// SoftDelete deactivates the account and stamps deleted_at. Returns
	// ErrNoteUserNotFound when the account is missing or already inactive.
	SoftDelete(ctx context.Context, uid string, at time.Time) error

	// ListAll returns the entire (optionally active-filtered) collection.
	// Pagination is applied by the caller after the fetch so totals
	// reflect the full filtered set.
	ListAll(ctx context.Context, active *bool) ([]*domain.NoteUser, error)
}

type noteUserRepository struct {
	db *sql.DB
}

// NewNoteUserRepository creates a new instance of NoteUserRepository
func NewNoteUserRepository(db *sql.DB) NoteUserRepository {
	return &noteUserRepository{db: db}
}

const noteUserColumns = `uid, email, first_name, last_name, full_name, is_active,
	preferences, total_notes, total_categories, last_login, created_at, updated_at, deleted_at`

// Create inserts a new notes-app profile using parameterized queries
func (r *noteUserRepository) Create(ctx context.Context, user *domain.NoteUser) error {
	prefs, err := json.Marshal(user.Preferences)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	query := `
		INSERT INTO note_users (uid, email, first_name, last_name, full_name, is_active,
			preferences, total_notes, total_categories, last_login, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		user.UID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.FullName,
		user.IsActive,
		prefs,
		user.Stats.TotalNotes,
		user.Stats.TotalCategories,
		user.Stats.LastLogin,
		user.CreatedAt,
		user.UpdatedAt,
		user.DeletedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create note user: %w", err)
	}

	return nil
}

// FindByUID retrieves a profile by its identity-provider uid
func (r *noteUserRepository) FindByUID(ctx context.Context, uid string) (*domain.NoteUser, error) {
	query := `SELECT ` + noteUserColumns + ` FROM note_users WHERE uid = $1`
	return scanNoteUser(r.db.QueryRowContext(ctx, query, uid))
}

// FindByEmail retrieves a profile by lower-cased email
func (r *noteUserRepository) FindByEmail(ctx context.Context, email string) (*domain.NoteUser, error) {
	query := `SELECT ` + noteUserColumns + ` FROM note_users WHERE email = $1`
	return scanNoteUser(r.db.QueryRowContext(ctx, query, email))
}

// EmailExists reports whether a profile with this email exists,
// regardless of active state.
func (r *noteUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM note_users WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return exists, nil
}

// Update writes back the merged profile. The caller owns the merge; this
// is a full-row write of the mutable columns.
func (r *noteUserRepository) Update(ctx context.Context, user *domain.NoteUser) error {
	prefs, err := json.Marshal(user.Preferences)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	query := `
		UPDATE note_users
		SET first_name = $2, last_name = $3, full_name = $4, preferences = $5,
		    total_notes = $6, total_categories = $7, updated_at = $8
		WHERE uid = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		user.UID,
		user.FirstName,
		user.LastName,
		user.FullName,
		prefs,
		user.Stats.TotalNotes,
		user.Stats.TotalCategories,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update note user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNoteUserNotFound
	}

	return nil
}

// TouchLastLogin stamps the last successful login time.
func (r *noteUserRepository) TouchLastLogin(ctx context.Context, uid string, at time.Time) error {
	query := `UPDATE note_users SET last_login = $2 WHERE uid = $1`

	if _, err := r.db.ExecContext(ctx, query, uid, at); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}

func (r *noteUserRepository) SoftDelete(ctx context.Context, uid string, at time.Time) error {
	query := `
		UPDATE note_users
		SET is_active = FALSE, deleted_at = $2, updated_at = $2
		WHERE uid = $1 AND is_active
	`

	result, err := r.db.ExecContext(ctx, query, uid, at)
	if err != nil {
		return fmt.Errorf("failed to soft delete note user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNoteUserNotFound
	}

	return nil
}

func (r *noteUserRepository) ListAll(ctx context.Context, active *bool) ([]*domain.NoteUser, error) {
	query := `
		SELECT ` + noteUserColumns + `
		FROM note_users
		WHERE ($1::boolean IS NULL OR is_active = $1)
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, active)
	if err != nil {
		return nil, fmt.Errorf("failed to list note users: %w", err)
	}
	defer rows.Close()

	users := []*domain.NoteUser{}
	for rows.Next() {
		user, err := scanNoteUserRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate note users: %w", err)
	}

	return users, nil
}

func scanNoteUser(row *sql.Row) (*domain.NoteUser, error) {
	user, err := scanNoteUserRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoteUserNotFound
		}
		return nil, fmt.Errorf("failed to find note user: %w", err)
	}
	return user, nil
}

func scanNoteUserRow(row rowScanner) (*domain.NoteUser, error) {
	user := &domain.NoteUser{}
	var prefs []byte

	err := row.Scan(
		&user.UID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.FullName,
		&user.IsActive,
		&prefs,
		&user.Stats.TotalNotes,
		&user.Stats.TotalCategories,
		&user.Stats.LastLogin,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(prefs, &user.Preferences); err != nil {
		return nil, fmt.Errorf("failed to decode preferences: %w", err)
	}

	return user, nil
}
