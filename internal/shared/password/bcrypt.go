package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptEncoder implements member.PasswordEncoder with bcrypt.
// Matches returns false for a malformed hash instead of failing.
type BcryptEncoder struct {
	cost int
}

// NewBcryptEncoder creates an encoder with the given cost.
func NewBcryptEncoder(cost int) (*BcryptEncoder, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("password: %w", bcrypt.InvalidCostError(cost))
	}
	return &BcryptEncoder{cost: cost}, nil
}

func (e *BcryptEncoder) Encode(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), e.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hashed), nil
}

func (e *BcryptEncoder) Matches(raw, hash string) bool {
	// mismatch, malformed hash and unsupported version all report false
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}

// Cost returns the bcrypt work factor used by Encode.
func (e *BcryptEncoder) Cost() int {
	return e.cost
}
