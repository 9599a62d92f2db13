package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// TokenManager generates and validates access, refresh and reset tokens.
// Parsing is a pure check of signature and expiry; refresh revocation is
// enforced separately against the user's stored refresh token.
type TokenManager interface {
	GenerateAccessToken(userID primitive.ObjectID) (string, error)
	GenerateRefreshToken(userID primitive.ObjectID) (string, error)
	GenerateResetToken(userID primitive.ObjectID) (string, error)
	ParseAccessToken(token string) (primitive.ObjectID, error)
	ParseRefreshToken(token string) (primitive.ObjectID, error)
	ParseResetToken(token string) (primitive.ObjectID, error)
}
