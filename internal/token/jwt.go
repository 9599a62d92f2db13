package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mpetrov/storefront-server/internal/model"
)

// Claims represents JWT claims with token type and user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	TokenType string `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC. The signing
// secret is injected at construction, never read from the environment.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

const (
	accessTTL  = 30 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
	resetTTL   = time.Hour

	typeAccess  = "access"
	typeRefresh = "refresh"
	typeReset   = "reset"
)

// GenerateAccessToken creates a short-lived access token.
func (j *JWT) GenerateAccessToken(userID primitive.ObjectID) (string, error) {
	return j.generate(userID, typeAccess, accessTTL)
}

// GenerateRefreshToken creates a long-lived refresh token.
func (j *JWT) GenerateRefreshToken(userID primitive.ObjectID) (string, error) {
	return j.generate(userID, typeRefresh, refreshTTL)
}

// GenerateResetToken creates a single-purpose password reset token.
func (j *JWT) GenerateResetToken(userID primitive.ObjectID) (string, error) {
	return j.generate(userID, typeReset, resetTTL)
}

// ParseAccessToken validates and extracts the user ID from an access token.
func (j *JWT) ParseAccessToken(token string) (primitive.ObjectID, error) {
	return j.parse(token, typeAccess)
}

// ParseRefreshToken validates and extracts the user ID from a refresh token.
func (j *JWT) ParseRefreshToken(token string) (primitive.ObjectID, error) {
	return j.parse(token, typeRefresh)
}

// ParseResetToken validates and extracts the user ID from a reset token.
func (j *JWT) ParseResetToken(token string) (primitive.ObjectID, error) {
	return j.parse(token, typeReset)
}

func (j *JWT) generate(userID primitive.ObjectID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID.Hex(),
		TokenType: tokenType,
	})

	tokenString, err := t.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}

	return tokenString, nil
}

func (j *JWT) parse(tokenString, tokenType string) (primitive.ObjectID, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return primitive.NilObjectID, model.ErrInvalidToken
		}
		return primitive.NilObjectID, fmt.Errorf("failed to parse %s token: %w", tokenType, model.ErrInvalidToken)
	}
	if !t.Valid {
		return primitive.NilObjectID, model.ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return primitive.NilObjectID, model.ErrInvalidToken
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, model.ErrInvalidToken
	}

	return userID, nil
}
