package model

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID primitive.ObjectID) context.Context
	GetUserIDFromContext(ctx context.Context) (primitive.ObjectID, bool)
}
