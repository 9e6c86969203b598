package testutil

import (
	"fmt"

	"github.com/changhyeonkim/splearn/internal/shared/token"
)

// MockTokenManager is a token.Manager whose behavior is set per test.
// Without overrides it issues "mock-access-token"/"mock-refresh-token" and
// rejects every token it is asked to validate.
type MockTokenManager struct {
	GenerateAccessTokenFunc  func(memberID uint32, email string) (string, error)
	GenerateRefreshTokenFunc func(memberID uint32, email string) (string, error)
	ValidateTokenFunc        func(tokenString string) (*token.Claims, error)
}

var _ token.Manager = (*MockTokenManager)(nil)

func NewMockTokenManager() *MockTokenManager {
	return &MockTokenManager{}
}

func (m *MockTokenManager) GenerateAccessToken(memberID uint32, email string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(memberID, email)
	}
	return "mock-access-token", nil
}

func (m *MockTokenManager) GenerateRefreshToken(memberID uint32, email string) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(memberID, email)
	}
	return "mock-refresh-token", nil
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*token.Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(tokenString)
	}
	return nil, fmt.Errorf("mock: %w", token.ErrInvalidToken)
}
