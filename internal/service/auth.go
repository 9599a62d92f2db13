package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mpetrov/storefront-server/internal/logger"
	"github.com/mpetrov/storefront-server/internal/model"
)

const minPasswordLength = 6

// Auth orchestrates registration, the session lifecycle and password
// recovery over the user store and token manager.
type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	hasher       model.PasswordHasher
	mailer       model.Mailer
	frontendURL  string
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	tokenManager model.TokenManager,
	hasher model.PasswordHasher,
	mailer model.Mailer,
	frontendURL string,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		hasher:       hasher,
		mailer:       mailer,
		frontendURL:  frontendURL,
		logger:       logger,
	}
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Addresses  []model.Address
	City       string
	Country    string
	Phone      string
	ProfilePic *model.ProfilePic
	Role       model.Role
}

func (in RegisterInput) validate() error {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.City == "" || in.Country == "" || in.Phone == "" {
		return model.NewValidationError("please provide all fields")
	}
	if len(in.Password) < minPasswordLength {
		return model.NewValidationError("password length should be greater than %d characters", minPasswordLength)
	}
	if len(in.Addresses) == 0 {
		return model.NewValidationError("addresses must contain at least one valid address")
	}
	for _, addr := range in.Addresses {
		if addr.Street == "" || addr.Landmark == "" || addr.City == "" || addr.Country == "" || addr.PostalCode == "" || addr.AddressType == "" {
			return model.NewValidationError("each address must contain street, landmark, city, country, postalCode and addressType")
		}
		if !model.ValidAddressType(addr.AddressType) {
			return model.NewValidationError("invalid addressType, allowed values: home, office, work, other")
		}
	}
	if in.Role != "" && !in.Role.Valid() {
		return model.NewValidationError("invalid role")
	}
	return nil
}

// Register creates a new user with a hashed secret.
func (a *Auth) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	a.logger.Debug("Auth service: registering user",
		"email", in.Email)

	if err := in.validate(); err != nil {
		return model.User{}, err
	}

	_, err := a.userStore.GetByEmail(ctx, in.Email)
	if err == nil {
		a.logger.Info("Auth service: email already registered",
			"email", in.Email)
		return model.User{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = model.RoleUser
	}

	now := time.Now()
	user := model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Addresses:    in.Addresses,
		City:         in.City,
		Country:      in.Country,
		Phone:        in.Phone,
		ProfilePic:   in.ProfilePic,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := a.userStore.Create(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", in.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"email", in.Email,
		"user_id", created.ID.Hex())

	return created, nil
}

// Login verifies credentials and issues a token pair. Unknown email and
// wrong password both fail with ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, email, password string) (model.TokenPair, model.User, error) {
	a.logger.Debug("Auth service: login attempt",
		"email", email)

	if email == "" || password == "" {
		return model.TokenPair{}, model.User{}, model.NewValidationError("please provide email and password")
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.TokenPair{}, model.User{}, model.ErrInvalidCredentials
		}
		return model.TokenPair{}, model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		return model.TokenPair{}, model.User{}, model.ErrInvalidCredentials
	}

	pair, err := a.issuePair(ctx, user.ID)
	if err != nil {
		return model.TokenPair{}, model.User{}, err
	}

	a.logger.Info("Auth service: login succeeded",
		"email", email,
		"user_id", user.ID.Hex())

	user.RefreshToken = pair.RefreshToken
	return pair, user, nil
}

// Refresh exchanges a valid refresh token for a new pair. Presenting a
// token that no longer matches the stored slot fails with
// ErrTokenRevoked; the stored slot is overwritten on success, so each
// refresh token works at most once.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	if refreshToken == "" {
		return model.TokenPair{}, model.ErrMissingToken
	}

	userID, err := a.tokenManager.ParseRefreshToken(refreshToken)
	if err != nil {
		return model.TokenPair{}, model.ErrInvalidToken
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.TokenPair{}, model.ErrTokenRevoked
		}
		return model.TokenPair{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		a.logger.Info("Auth service: stale refresh token presented",
			"user_id", userID.Hex())
		return model.TokenPair{}, model.ErrTokenRevoked
	}

	pair, err := a.issuePair(ctx, userID)
	if err != nil {
		return model.TokenPair{}, err
	}

	a.logger.Info("Auth service: tokens refreshed",
		"user_id", userID.Hex())

	return pair, nil
}

// Logout clears the stored refresh token. A second logout finds the slot
// already empty and fails with ErrNoActiveSession.
func (a *Auth) Logout(ctx context.Context, userID primitive.ObjectID) error {
	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if user.RefreshToken == "" {
		return model.ErrNoActiveSession
	}

	if err := a.userStore.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}

	a.logger.Info("Auth service: user logged out",
		"user_id", userID.Hex())

	return nil
}

// GetProfile returns the stored user.
func (a *Auth) GetProfile(ctx context.Context, userID primitive.ObjectID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// UpdateProfileInput carries optional profile fields; empty values are
// left unchanged.
type UpdateProfileInput struct {
	Name       string
	Email      string
	Phone      string
	City       string
	Country    string
	Addresses  []model.Address
	ProfilePic *model.ProfilePic
}

func (in UpdateProfileInput) empty() bool {
	return in.Name == "" && in.Email == "" && in.Phone == "" && in.City == "" &&
		in.Country == "" && len(in.Addresses) == 0 && in.ProfilePic == nil
}

// UpdateProfile applies the provided fields to the user's profile. The
// password hash is never touched here.
func (a *Auth) UpdateProfile(ctx context.Context, userID primitive.ObjectID, in UpdateProfileInput) (model.User, error) {
	if in.empty() {
		return model.User{}, model.NewValidationError("at least one field is required to update")
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.City != "" {
		user.City = in.City
	}
	if in.Country != "" {
		user.Country = in.Country
	}
	if len(in.Addresses) > 0 {
		user.Addresses = in.Addresses
	}
	if in.ProfilePic != nil {
		user.ProfilePic = in.ProfilePic
	}

	updated, err := a.userStore.Update(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	a.logger.Info("Auth service: profile updated",
		"user_id", userID.Hex())

	return updated, nil
}

// ChangePassword verifies the old secret and stores a hash of the new one.
func (a *Auth) ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return model.NewValidationError("both old and new password are required")
	}
	if len(newPassword) < minPasswordLength {
		return model.NewValidationError("password length should be greater than %d characters", minPasswordLength)
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := a.hasher.Compare(user.PasswordHash, oldPassword); err != nil {
		return model.ErrInvalidCredentials
	}

	hash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.userStore.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	a.logger.Info("Auth service: password changed",
		"user_id", userID.Hex())

	return nil
}

// ForgotPassword sends a reset link with a short-lived reset token.
func (a *Auth) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return model.NewValidationError("email is required")
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	resetToken, err := a.tokenManager.GenerateResetToken(user.ID)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", a.frontendURL, resetToken)
	body := fmt.Sprintf("Please click the following link to reset your password: %s", resetURL)

	if err := a.mailer.Send(ctx, user.Email, "Password Reset Request", body); err != nil {
		a.logger.Error("Auth service: failed to send reset email",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	a.logger.Info("Auth service: reset link sent",
		"email", email)

	return nil
}

// ResetPassword replaces the secret after validating the reset token.
func (a *Auth) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if resetToken == "" || newPassword == "" {
		return model.NewValidationError("reset token and new password are required")
	}
	if len(newPassword) < minPasswordLength {
		return model.NewValidationError("password length should be greater than %d characters", minPasswordLength)
	}

	userID, err := a.tokenManager.ParseResetToken(resetToken)
	if err != nil {
		return model.ErrInvalidToken
	}

	if _, err := a.userStore.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	hash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.userStore.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	a.logger.Info("Auth service: password reset",
		"user_id", userID.Hex())

	return nil
}

// issuePair creates a fresh access/refresh pair and overwrites the user's
// single refresh token slot, revoking any previously issued one.
func (a *Auth) issuePair(ctx context.Context, userID primitive.ObjectID) (model.TokenPair, error) {
	access, err := a.tokenManager.GenerateAccessToken(userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := a.tokenManager.GenerateRefreshToken(userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := a.userStore.SetRefreshToken(ctx, userID, refresh); err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
