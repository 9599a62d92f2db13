package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/mpetrov/storefront-server/internal/model"
)

var _ model.PasswordHasher = (*BcryptHasher)(nil)

// DefaultCost is the bcrypt work factor used when the caller has no
// stronger requirement.
const DefaultCost = bcrypt.DefaultCost

// BcryptHasher implements PasswordHasher via bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt-based hasher. Non-positive cost falls
// back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a one-way hash from the plaintext secret.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare checks the plaintext against a stored hash in constant time.
func (h *BcryptHasher) Compare(hash, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
}
