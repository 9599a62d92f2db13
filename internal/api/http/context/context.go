package context

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mpetrov/storefront-server/internal/model"
)

var _ model.ContextManager = (*Manager)(nil)

type ctxKey int

const userIDKey ctxKey = iota

// Manager stores and retrieves the authenticated user ID on a request
// context.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) SetUserIDToContext(ctx context.Context, userID primitive.ObjectID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func (m *Manager) GetUserIDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	userID, ok := ctx.Value(userIDKey).(primitive.ObjectID)
	return userID, ok
}
