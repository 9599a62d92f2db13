package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mpetrov/storefront-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(conn *Connection) *UserRepository {
	return &UserRepository{
		coll: conn.Collection(collUsers),
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.User{}, model.ErrEmailTaken
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Update persists profile fields. The password hash and refresh token are
// deliberately excluded so a profile write can never change the secret.
func (r *UserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	update := bson.M{"$set": bson.M{
		"name":       user.Name,
		"email":      user.Email,
		"phone":      user.Phone,
		"city":       user.City,
		"country":    user.Country,
		"addresses":  user.Addresses,
		"profilePic": user.ProfilePic,
		"role":       user.Role,
		"updatedAt":  time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": user.ID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, model.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return model.User{}, model.ErrEmailTaken
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	update := bson.M{"$set": bson.M{
		"password":  passwordHash,
		"updatedAt": time.Now(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	update := bson.M{"$set": bson.M{
		"refreshToken": token,
		"updatedAt":    time.Now(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set refresh token: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{
		"$unset": bson.M{"refreshToken": ""},
		"$set":   bson.M{"updatedAt": time.Now()},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}
