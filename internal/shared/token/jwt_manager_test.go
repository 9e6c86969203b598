package token

import (
	"testing"
	"time"

	"github.com/changhyeonkim/splearn/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *JWTManager {
	return NewJWTManager(&config.Config{
		App: config.AppConfig{Name: "splearn-api-test"},
		JWT: config.JWTConfig{
			Secret:        "test-secret-key-for-testing-only",
			Expiry:        time.Hour,
			RefreshExpiry: 24 * time.Hour,
		},
	})
}

func TestGenerateAndValidate(t *testing.T) {
	manager := newTestManager()

	testCases := []struct {
		name     string
		generate func(uint32, string) (string, error)
		wantType string
	}{
		{name: "access", generate: manager.GenerateAccessToken, wantType: ACCESS},
		{name: "refresh", generate: manager.GenerateRefreshToken, wantType: REFRESH},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			signed, err := tc.generate(42, "toby@splearn.app")
			require.NoError(t, err)

			claims, err := manager.ValidateToken(signed)

			require.NoError(t, err)
			assert.Equal(t, uint32(42), claims.MemberID)
			assert.Equal(t, "toby@splearn.app", claims.Email)
			assert.Equal(t, tc.wantType, claims.TokenType)
			assert.Equal(t, "42", claims.Subject)
			assert.Equal(t, "splearn-api-test", claims.Issuer)
		})
	}
}

func TestValidateToken_Expired(t *testing.T) {
	manager := newTestManager()
	issuedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return issuedAt }

	signed, err := manager.GenerateAccessToken(1, "toby@splearn.app")
	require.NoError(t, err)

	manager.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = manager.ValidateToken(signed)

	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Rejects(t *testing.T) {
	manager := newTestManager()

	other := newTestManager()
	other.secret = []byte("another-secret")
	foreignSigned, err := other.GenerateAccessToken(1, "toby@splearn.app")
	require.NoError(t, err)

	otherIssuer := newTestManager()
	otherIssuer.issuer = "someone-else"
	foreignIssuer, err := otherIssuer.GenerateAccessToken(1, "toby@splearn.app")
	require.NoError(t, err)

	noMember, err := manager.GenerateAccessToken(0, "toby@splearn.app")
	require.NoError(t, err)

	unknownType, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		MemberID:  1,
		TokenType: "session",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    manager.issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(manager.secret)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "Garbage", token: "not-a-jwt", wantErr: ErrInvalidToken},
		{name: "Wrong secret", token: foreignSigned, wantErr: ErrInvalidToken},
		{name: "Wrong issuer", token: foreignIssuer, wantErr: ErrInvalidToken},
		{name: "No member", token: noMember, wantErr: ErrInvalidClaims},
		{name: "Unknown token type", token: unknownType, wantErr: ErrInvalidClaims},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := manager.ValidateToken(tc.token)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
