package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sornchai2025/buildmate-auth/internal/logger"
	"github.com/sornchai2025/buildmate-auth/internal/middlewares"
	"github.com/sornchai2025/buildmate-auth/internal/models"
)

// SessionStater resolves a session token into its per-request state.
type SessionStater interface {
	GetState(ctx context.Context, token string) (*models.SessionState, error)
}

// ProfileReader defines read access to profiles.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfileDB, error)
}

// ProfileWriter defines write access to profiles.
type ProfileWriter interface {
	Upsert(ctx context.Context, userID int64, bio, phone, address *string, birthDate *time.Time) (*models.UserProfileDB, error)
}

// ProfileRequest represents the JSON body for the profile upsert
// swagger:model ProfileRequest
type ProfileRequest struct {
	Bio       *string    `json:"bio,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Address   *string    `json:"address,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// NewGetProfileHandler returns an HTTP handler serving the caller's profile.
// The route sits behind the request gate, but the handler still resolves
// the session itself to find the owner.
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.UserProfileDB
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /profile [get]
func NewGetProfileHandler(sessions SessionStater, profiles ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := sessionState(r, sessions)
		if state == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Not authenticated"})
			return
		}

		profile, err := profiles.GetByUserID(r.Context(), state.UserID)
		if err != nil {
			logger.Log.Errorw("failed to load profile", "user_id", state.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if profile == nil {
			// No row yet: serve an empty profile rather than a 404 so
			// the form can render.
			profile = &models.UserProfileDB{UserID: state.UserID}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}

// NewPutProfileHandler returns an HTTP handler upserting the caller's profile.
// @Summary Create or update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profileRequest body handlers.ProfileRequest true "Profile fields"
// @Success 200 {object} models.UserProfileDB
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /profile [put]
func NewPutProfileHandler(sessions SessionStater, profiles ProfileWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := sessionState(r, sessions)
		if state == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Not authenticated"})
			return
		}

		var req ProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		profile, err := profiles.Upsert(r.Context(), state.UserID, req.Bio, req.Phone, req.Address, req.BirthDate)
		if err != nil {
			logger.Log.Errorw("failed to upsert profile", "user_id", state.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}

// sessionState resolves the request's session cookie, or nil.
func sessionState(r *http.Request, sessions SessionStater) *models.SessionState {
	cookie, err := r.Cookie(middlewares.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	state, err := sessions.GetState(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return state
}
