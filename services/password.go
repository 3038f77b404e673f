package services

import (
	"techsphere-api/config"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and checks user passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

type bcryptHasher struct {
	cost int
}

// NewPasswordHasher returns a bcrypt hasher. Costs below
// config.MinBcryptCost are raised to it.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < config.MinBcryptCost {
		cost = config.MinBcryptCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
