package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mpetrov/storefront-server/internal/logger"
	"github.com/mpetrov/storefront-server/internal/model"
)

// TokenParser resolves user IDs from bearer access tokens.
type TokenParser interface {
	ParseAccessToken(token string) (primitive.ObjectID, error)
}

// UserGetter loads the identity behind a validated token.
type UserGetter interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error)
}

// Authenticate validates the Authorization header and injects the user ID
// into the request context.
type Authenticate struct {
	tokens         TokenParser
	users          UserGetter
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenParser, users UserGetter, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokens:         tokens,
		users:          users,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handler wraps next with bearer token authentication. Requests without a
// token get 401, requests with a bad token 403, and tokens pointing at a
// deleted user 404.
func (m *Authenticate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			writeAuthError(w, http.StatusUnauthorized, "access token is missing, authorization denied")
			return
		}

		userID, err := m.tokens.ParseAccessToken(tokenString)
		if err != nil {
			writeAuthError(w, http.StatusForbidden, "invalid or expired token")
			return
		}

		user, err := m.users.GetByID(r.Context(), userID)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token user not found",
				"user_id", userID.Hex())
			writeAuthError(w, http.StatusNotFound, "user not found")
			return
		}

		ctx := m.contextManager.SetUserIDToContext(r.Context(), user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"success":false,"message":"` + message + `"}`))
}
