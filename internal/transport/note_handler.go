package transport

import (
	"errors"
	"net/http"

	"github.com/Gaurav-Soni24/backend-inventory/internal/middleware"
	"github.com/Gaurav-Soni24/backend-inventory/internal/repository"
	"github.com/Gaurav-Soni24/backend-inventory/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NoteSignupRequest represents the notes-app signup payload
type NoteSignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// ResetPasswordRequest represents the reset-password payload
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// PreferencesPatch carries the recognized preference keys of a partial
// profile update; unknown keys submitted by clients are dropped by the
// decoder.
type PreferencesPatch struct {
	Theme         *string `json:"theme"`
	Notifications *bool   `json:"notifications"`
	AutoSave      *bool   `json:"autoSave"`
}

// UpdateNoteProfileRequest represents a partial profile update
type UpdateNoteProfileRequest struct {
	FirstName   *string           `json:"firstName"`
	LastName    *string           `json:"lastName"`
	Preferences *PreferencesPatch `json:"preferences"`
}

// UpdateNoteStatsRequest represents a partial stats update
type UpdateNoteStatsRequest struct {
	TotalNotes      *FlexInt `json:"totalNotes"`
	TotalCategories *FlexInt `json:"totalCategories"`
}

// PaginationInfo describes the slice returned by the admin listing.
// Total covers the entire filtered set, not just this page.
type PaginationInfo struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NoteHandler handles HTTP requests for the notes app
type NoteHandler struct {
	noteService service.NoteUserService
	logger      *zap.Logger
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteService service.NoteUserService, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		logger:      logger,
	}
}

// RegisterRoutes registers all notes-app routes under /api/neural-note.
// Admin listing requires an admin principal; loginLimiter guards the
// credential-guessing targets.
func (h *NoteHandler) RegisterRoutes(r chi.Router, authMiddleware, adminMiddleware, loginLimiter func(http.Handler) http.Handler) {
	r.Route("/api/neural-note", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimiter).Post("/signup", h.Signup)
			r.With(loginLimiter).Post("/login", h.Login)
			r.Post("/reset-password", h.ResetPassword)
			r.Get("/check-email/{email}", h.CheckEmail)
		})

		r.Route("/user", func(r chi.Router) {
			r.Get("/profile/{userId}", h.GetProfile)
			r.Put("/profile/{userId}", h.UpdateProfile)
			r.Delete("/{userId}", h.Delete)
			r.Get("/stats/{userId}", h.GetStats)
			r.Put("/stats/{userId}", h.UpdateStats)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(adminMiddleware)
			r.Get("/users", h.ListUsers)
		})
	})
}

// Signup registers a notes-app account
func (h *NoteHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req NoteSignupRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Note signup validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.noteService.Signup(r.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			middleware.RespondWithError(w, http.StatusConflict, "email is already registered")
			return
		}

		h.logger.Error("Note signup failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to sign up")
		return
	}

	h.logger.Info("Note user signed up", zap.String("uid", user.UID))
	middleware.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

// Login authenticates a notes-app account
func (h *NoteHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.noteService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			middleware.RespondWithError(w, http.StatusUnauthorized, "invalid email or password")
		case errors.Is(err, service.ErrAccountDeactivated):
			middleware.RespondWithError(w, http.StatusForbidden, "account is deactivated")
		case errors.Is(err, service.ErrUserDataMissing):
			middleware.RespondWithError(w, http.StatusNotFound, "user data not found")
		default:
			h.logger.Error("Note login failed", zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to login")
		}
		return
	}

	h.logger.Info("Note user logged in", zap.String("uid", user.UID))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"user":         user,
		"access_token": token,
	})
}

// ResetPassword rotates the credential when the account exists. The
// response is the same either way so this endpoint cannot be used to
// probe for accounts.
func (h *NoteHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.noteService.ResetPassword(r.Context(), req.Email, req.NewPassword); err != nil {
		h.logger.Error("Password reset failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to reset password")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "if the account exists, the password has been reset",
	})
}

// CheckEmail reports whether an email is registered
func (h *NoteHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	exists, err := h.noteService.CheckEmail(r.Context(), email)
	if err != nil {
		h.logger.Error("Email check failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to check email")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

// GetProfile returns an active profile
func (h *NoteHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.noteService.GetProfile(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.respondProfileError(w, err, "Failed to load profile")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, user)
}

// UpdateProfile merges the provided fields into the profile
func (h *NoteHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateNoteProfileRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := service.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.Preferences != nil {
		input.Theme = req.Preferences.Theme
		input.Notifications = req.Preferences.Notifications
		input.AutoSave = req.Preferences.AutoSave
	}

	user, err := h.noteService.UpdateProfile(r.Context(), chi.URLParam(r, "userId"), input)
	if err != nil {
		h.respondProfileError(w, err, "Failed to update profile")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, user)
}

// Delete soft-deletes the account; the data stays behind the
// is_active flag.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.noteService.Deactivate(r.Context(), chi.URLParam(r, "userId")); err != nil {
		h.respondProfileError(w, err, "Failed to delete user")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "user deactivated"})
}

// GetStats returns the per-user counters
func (h *NoteHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.noteService.GetStats(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.respondProfileError(w, err, "Failed to load stats")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, stats)
}

// UpdateStats merges the provided counters
func (h *NoteHandler) UpdateStats(w http.ResponseWriter, r *http.Request) {
	var req UpdateNoteStatsRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := service.UpdateStatsInput{}
	if req.TotalNotes != nil {
		n := req.TotalNotes.Int()
		input.TotalNotes = &n
	}
	if req.TotalCategories != nil {
		n := req.TotalCategories.Int()
		input.TotalCategories = &n
	}

	stats, err := h.noteService.UpdateStats(r.Context(), chi.URLParam(r, "userId"), input)
	if err != nil {
		h.respondProfileError(w, err, "Failed to update stats")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, stats)
}

// ListUsers returns a page of the filtered account collection. The
// whole filtered set is fetched first, so pagination totals describe it
// completely.
func (h *NoteHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := parsePositiveInt(q.Get("page"), 1)
	limit := parsePositiveInt(q.Get("limit"), 10)

	var active *bool
	switch q.Get("active") {
	case "true":
		v := true
		active = &v
	case "false":
		v := false
		active = &v
	case "":
		// no filter
	default:
		middleware.RespondWithError(w, http.StatusBadRequest, "active must be 'true' or 'false'")
		return
	}

	result, err := h.noteService.ListUsers(r.Context(), active, page, limit)
	if err != nil {
		h.logger.Error("Failed to list note users", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"users": result.Users,
		"pagination": PaginationInfo{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

func (h *NoteHandler) respondProfileError(w http.ResponseWriter, err error, logMsg string) {
	if errors.Is(err, repository.ErrNoteUserNotFound) {
		middleware.RespondWithError(w, http.StatusNotFound, "user not found")
		return
	}

	h.logger.Error(logMsg, zap.Error(err))
	middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
}
