// Package identity abstracts the credential-issuing service behind a
// small interface. Services depend on Provider only; the concrete
// implementation is injected at server construction.
package identity

import (
	"context"
	"errors"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCredentialNotFound = errors.New("credential not found")
)

// Provider issues and verifies credentials and hands back an opaque,
// stable user identifier. Each app namespace gets its own Provider so
// the two apps cannot see each other's credentials.
type Provider interface {
	// CreateCredential registers email/password and returns the new uid.
	// Returns ErrEmailTaken when the email is already registered in this
	// namespace.
	CreateCredential(ctx context.Context, email, password string) (string, error)

	// VerifyCredential checks email/password and returns the uid.
	// Returns ErrInvalidCredentials on any mismatch.
	VerifyCredential(ctx context.Context, email, password string) (string, error)

	// UpdatePassword replaces the password for an existing credential.
	// Returns ErrCredentialNotFound when the email is not registered.
	UpdatePassword(ctx context.Context, email, newPassword string) error
}
