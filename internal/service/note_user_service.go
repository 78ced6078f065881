package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gaurav-Soni24/backend-inventory/internal/domain"
	"github.com/Gaurav-Soni24/backend-inventory/internal/identity"
	"github.com/Gaurav-Soni24/backend-inventory/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrAccountDeactivated = errors.New("account is deactivated")
)

// UpdateProfileInput carries a partial profile update. Nil fields are
// left untouched; preference fields merge key-by-key over the stored
// settings.
type UpdateProfileInput struct {
	FirstName     *string
	LastName      *string
	Theme         *string
	Notifications *bool
	AutoSave      *bool
}

// UpdateStatsInput carries a partial stats update.
type UpdateStatsInput struct {
	TotalNotes      *int
	TotalCategories *int
}

// NoteUserPage is the admin listing result. Total always reflects the
// entire filtered set, not just the returned slice.
type NoteUserPage struct {
	Users      []*domain.NoteUser
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// NoteUserService owns the notes-app account lifecycle: signup, login,
// profile merge, soft delete, stats and admin listing.
type NoteUserService interface {
	Signup(ctx context.Context, email, password, firstName, lastName string) (*domain.NoteUser, error)
	Login(ctx context.Context, email, password string) (*domain.NoteUser, string, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
	CheckEmail(ctx context.Context, email string) (bool, error)
	GetProfile(ctx context.Context, uid string) (*domain.NoteUser, error)
	UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*domain.NoteUser, error)
	Deactivate(ctx context.Context, uid string) error
	GetStats(ctx context.Context, uid string) (*domain.NoteStats, error)
	UpdateStats(ctx context.Context, uid string, input UpdateStatsInput) (*domain.NoteStats, error)
	ListUsers(ctx context.Context, active *bool, page, limit int) (*NoteUserPage, error)
}

type noteUserService struct {
	provider  identity.Provider
	userRepo  repository.NoteUserRepository
	jwtSecret string
	now       func() time.Time
}

// NewNoteUserService creates a new instance of NoteUserService
func NewNoteUserService(provider identity.Provider, userRepo repository.NoteUserRepository, jwtSecret string) NoteUserService {
	return &noteUserService{
		provider:  provider,
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		now:       time.Now,
	}
}

// Signup registers a notes-app account. The duplicate check runs before
// the credential is created, so a taken email leaves neither a
// credential nor a profile behind.
func (s *noteUserService) Signup(ctx context.Context, email, password, firstName, lastName string) (*domain.NoteUser, error) {
	email = strings.ToLower(email)

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	uid, err := s.provider.CreateCredential(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}

	now := s.now()
	user := &domain.NoteUser{
		UID:         uid,
		Email:       email,
		FirstName:   firstName,
		LastName:    lastName,
		FullName:    domain.ComposeFullName(firstName, lastName),
		IsActive:    true,
		Preferences: domain.DefaultPreferences(),
		Stats:       domain.NoteStats{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create note user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns the profile with an access
// token. Deactivated accounts are rejected even with valid credentials.
// stats.lastLogin is updated unconditionally on success.
func (s *noteUserService) Login(ctx context.Context, email, password string) (*domain.NoteUser, string, error) {
	uid, err := s.provider.VerifyCredential(ctx, strings.ToLower(email), password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to verify credential: %w", err)
	}

	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNoteUserNotFound) {
			return nil, "", ErrUserDataMissing
		}
		return nil, "", fmt.Errorf("failed to find note user: %w", err)
	}

	if !user.IsActive {
		return nil, "", ErrAccountDeactivated
	}

	now := s.now()
	if err := s.userRepo.TouchLastLogin(ctx, uid, now); err != nil {
		return nil, "", fmt.Errorf("failed to update last login: %w", err)
	}
	user.Stats.LastLogin = &now

	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return user, token, nil
}

// ResetPassword rotates the credential when the account exists. The
// caller always gets a generic acknowledgement; absence of the account
// is not revealed here.
func (s *noteUserService) ResetPassword(ctx context.Context, email, newPassword string) error {
	email = strings.ToLower(email)

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if !exists {
		return nil
	}

	if err := s.provider.UpdatePassword(ctx, email, newPassword); err != nil {
		if errors.Is(err, identity.ErrCredentialNotFound) {
			return nil
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// CheckEmail reports whether the lower-cased email is registered.
func (s *noteUserService) CheckEmail(ctx context.Context, email string) (bool, error) {
	return s.userRepo.EmailExists(ctx, strings.ToLower(email))
}

// GetProfile returns the active profile; soft-deleted accounts read as
// absent.
func (s *noteUserService) GetProfile(ctx context.Context, uid string) (*domain.NoteUser, error) {
	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, repository.ErrNoteUserNotFound
	}
	return user, nil
}

// UpdateProfile merges the provided fields over the stored profile.
// firstName/lastName changes regenerate fullName; preference fields are
// shallow-merged over the stored settings.
func (s *noteUserService) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*domain.NoteUser, error) {
	user, err := s.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	user.FullName = domain.ComposeFullName(user.FirstName, user.LastName)

	if input.Theme != nil {
		user.Preferences.Theme = *input.Theme
	}
	if input.Notifications != nil {
		user.Preferences.Notifications = *input.Notifications
	}
	if input.AutoSave != nil {
		user.Preferences.AutoSave = *input.AutoSave
	}

	user.UpdatedAt = s.now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Deactivate soft-deletes the account. A second call reads as not found.
func (s *noteUserService) Deactivate(ctx context.Context, uid string) error {
	return s.userRepo.SoftDelete(ctx, uid, s.now())
}

func (s *noteUserService) GetStats(ctx context.Context, uid string) (*domain.NoteStats, error) {
	user, err := s.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &user.Stats, nil
}

func (s *noteUserService) UpdateStats(ctx context.Context, uid string, input UpdateStatsInput) (*domain.NoteStats, error) {
	user, err := s.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.TotalNotes != nil {
		user.Stats.TotalNotes = *input.TotalNotes
	}
	if input.TotalCategories != nil {
		user.Stats.TotalCategories = *input.TotalCategories
	}
	user.UpdatedAt = s.now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &user.Stats, nil
}

// ListUsers fetches the entire filtered collection and slices the
// requested page in memory, so Total and TotalPages always describe the
// full filtered set.
func (s *noteUserService) ListUsers(ctx context.Context, active *bool, page, limit int) (*NoteUserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	users, err := s.userRepo.ListAll(ctx, active)
	if err != nil {
		return nil, err
	}

	total := len(users)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &NoteUserPage{
		Users:      users[start:end],
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *noteUserService) generateAccessToken(user *domain.NoteUser) (string, error) {
	expirationTime := s.now().Add(AccessTokenExpiration)
	claims := &Claims{
		UserID: user.UID,
		Name:   user.FullName,
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
