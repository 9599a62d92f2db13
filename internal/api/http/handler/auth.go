package handler

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mpetrov/storefront-server/internal/logger"
	"github.com/mpetrov/storefront-server/internal/model"
	"github.com/mpetrov/storefront-server/internal/service"
)

// AuthService defines the account and session operations the handler
// exposes.
type AuthService interface {
	Register(ctx context.Context, in service.RegisterInput) (model.User, error)
	Login(ctx context.Context, email, password string) (model.TokenPair, model.User, error)
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	Logout(ctx context.Context, userID primitive.ObjectID) error
	GetProfile(ctx context.Context, userID primitive.ObjectID) (model.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, in service.UpdateProfileInput) (model.User, error)
	ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

// Auth handles the user and session endpoints.
type Auth struct {
	service        AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(service AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type registerRequest struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Password   string            `json:"password"`
	Addresses  []model.Address   `json:"addresses"`
	City       string            `json:"city"`
	Country    string            `json:"country"`
	Phone      string            `json:"phone"`
	ProfilePic *model.ProfilePic `json:"profilePic"`
	Role       model.Role        `json:"role"`
}

func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	user, err := h.service.Register(r.Context(), service.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Addresses:  req.Addresses,
		City:       req.City,
		Country:    req.Country,
		Phone:      req.Phone,
		ProfilePic: req.ProfilePic,
		Role:       req.Role,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{
		"success": true,
		"message": "registration success, please login",
		"user":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	pair, user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":      true,
		"message":      "login successful",
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"user":         user,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh exchanges a refresh token, read from the JSON body or the
// Authorization header, for a new token pair.
func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	_ = decodeJSON(r, &req)

	token := req.RefreshToken
	if token == "" {
		if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		}
	}

	pair, err := h.service.Refresh(r.Context(), token)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":      true,
		"message":      "token refreshed successfully",
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, response{"success": false, "message": "authorization required"})
		return
	}

	if err := h.service.Logout(r.Context(), userID); err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "user logged out successfully",
	})
}

func (h *Auth) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, response{"success": false, "message": "authorization required"})
		return
	}

	user, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "user profile fetched successfully",
		"user":    user,
	})
}

type updateProfileRequest struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	City       string            `json:"city"`
	Country    string            `json:"country"`
	Addresses  []model.Address   `json:"addresses"`
	ProfilePic *model.ProfilePic `json:"profilePic"`
}

func (h *Auth) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, response{"success": false, "message": "authorization required"})
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, service.UpdateProfileInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		City:       req.City,
		Country:    req.Country,
		Addresses:  req.Addresses,
		ProfilePic: req.ProfilePic,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "profile updated successfully",
		"user":    user,
	})
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (h *Auth) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, response{"success": false, "message": "authorization required"})
		return
	}

	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "password updated successfully",
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (h *Auth) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req.Email); err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "reset password link has been sent to your email",
	})
}

type resetPasswordRequest struct {
	ResetToken  string `json:"resetToken"`
	NewPassword string `json:"newPassword"`
}

func (h *Auth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.ResetToken, req.NewPassword); err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "password has been reset successfully",
	})
}
