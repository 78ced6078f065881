package domain

import (
	"time"
)

// Preferences holds the recognized per-user settings of the notes app.
// Unknown keys submitted by clients are dropped at the transport layer.
type Preferences struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	AutoSave      bool   `json:"autoSave"`
}

// DefaultPreferences returns the settings assigned at signup.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         "light",
		Notifications: true,
		AutoSave:      true,
	}
}

// NoteStats carries per-user counters for the notes app.
type NoteStats struct {
	TotalNotes      int        `json:"totalNotes"`
	TotalCategories int        `json:"totalCategories"`
	LastLogin       *time.Time `json:"lastLogin"`
}

// NoteUser is a notes-app account. Email is stored lower-cased and is
// unique within the notes namespace. Deletion is soft: IsActive flips to
// false and DeletedAt records when.
type NoteUser struct {
	UID         string      `json:"uid" db:"uid"`
	Email       string      `json:"email" db:"email"`
	FirstName   string      `json:"firstName" db:"first_name"`
	LastName    string      `json:"lastName" db:"last_name"`
	FullName    string      `json:"fullName" db:"full_name"`
	IsActive    bool        `json:"isActive" db:"is_active"`
	Preferences Preferences `json:"preferences" db:"preferences"`
	Stats       NoteStats   `json:"stats" db:"stats"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
	DeletedAt   *time.Time  `json:"deletedAt,omitempty" db:"deleted_at"`
}

// ComposeFullName derives the display name stored alongside the parts.
func ComposeFullName(firstName, lastName string) string {
	if firstName == "" {
		return lastName
	}
	if lastName == "" {
		return firstName
	}
	return firstName + " " + lastName
}
