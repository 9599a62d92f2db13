package model

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the access role assigned to a user.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleUser   Role = "user"
	RoleEditor Role = "editor"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleEditor:
		return true
	}
	return false
}

// Allowed address types.
const (
	AddressTypeHome   = "home"
	AddressTypeOffice = "office"
	AddressTypeWork   = "work"
	AddressTypeOther  = "other"
)

// ValidAddressType reports whether t is an allowed address type.
func ValidAddressType(t string) bool {
	switch t {
	case AddressTypeHome, AddressTypeOffice, AddressTypeWork, AddressTypeOther:
		return true
	}
	return false
}

// Address is a delivery address attached to a user.
type Address struct {
	Street      string `bson:"street" json:"street"`
	Landmark    string `bson:"landmark" json:"landmark"`
	City        string `bson:"city" json:"city"`
	Country     string `bson:"country" json:"country"`
	PostalCode  string `bson:"postalCode" json:"postalCode"`
	AddressType string `bson:"addressType" json:"addressType"`
}

// ProfilePic references an externally hosted profile image.
type ProfilePic struct {
	PublicID string `bson:"public_id,omitempty" json:"public_id,omitempty"`
	URL      string `bson:"url,omitempty" json:"url,omitempty"`
}

// User represents a stored user with authentication material.
// PasswordHash holds the bcrypt hash, never the plaintext.
// RefreshToken is the single active renewal credential; empty means
// no live session.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	RefreshToken string             `bson:"refreshToken,omitempty" json:"-"`
	Addresses    []Address          `bson:"addresses" json:"addresses"`
	City         string             `bson:"city" json:"city"`
	Country      string             `bson:"country" json:"country"`
	Phone        string             `bson:"phone" json:"phone"`
	ProfilePic   *ProfilePic        `bson:"profilePic,omitempty" json:"profilePic,omitempty"`
	Role         Role               `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserStore defines persistence operations for users.
//
// UpdatePassword is the only write allowed to touch the password hash;
// Update must leave it untouched so profile edits never re-hash.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error
	ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error
}

// PasswordHasher hashes and verifies user secrets.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) error
}
