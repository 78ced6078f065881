package domain

import (
	"time"
)

// User is an inventory-app account. UID is the opaque identifier issued
// by the identity provider; the profile row here carries everything else.
type User struct {
	UID       string    `json:"uid" db:"uid"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// RefreshToken is a persisted, revocable token for renewing access tokens.
type RefreshToken struct {
	ID        string    `json:"id" db:"id"`
	UserUID   string    `json:"userUid" db:"user_uid"`
	Token     string    `json:"token" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
}
