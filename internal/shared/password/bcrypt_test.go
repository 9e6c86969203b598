package password_test

import (
	"strings"
	"testing"

	"github.com/changhyeonkim/splearn/internal/member"
	"github.com/changhyeonkim/splearn/internal/shared/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var _ member.PasswordEncoder = (*password.BcryptEncoder)(nil)

func newTestEncoder(t *testing.T) *password.BcryptEncoder {
	t.Helper()

	encoder, err := password.NewBcryptEncoder(bcrypt.MinCost)
	require.NoError(t, err)
	return encoder
}

func TestBcryptEncoder_EncodeAndMatch(t *testing.T) {
	encoder := newTestEncoder(t)

	hash, err := encoder.Encode("password123")

	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.True(t, encoder.Matches("password123", hash))
	assert.False(t, encoder.Matches("password124", hash))
}

func TestBcryptEncoder_SaltsEachHash(t *testing.T) {
	encoder := newTestEncoder(t)

	first, err := encoder.Encode("password123")
	require.NoError(t, err)
	second, err := encoder.Encode("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, encoder.Matches("password123", first))
	assert.True(t, encoder.Matches("password123", second))
}

func TestBcryptEncoder_MalformedHash(t *testing.T) {
	encoder := newTestEncoder(t)

	assert.False(t, encoder.Matches("password123", "not-a-bcrypt-hash"))
	assert.False(t, encoder.Matches("password123", ""))
}

func TestBcryptEncoder_PasswordTooLong(t *testing.T) {
	encoder := newTestEncoder(t)

	_, err := encoder.Encode(strings.Repeat("a", 73))

	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

func TestNewBcryptEncoder_Cost(t *testing.T) {
	testCases := []struct {
		name    string
		cost    int
		wantErr bool
	}{
		{name: "zero", cost: 0, wantErr: true},
		{name: "below min", cost: bcrypt.MinCost - 1, wantErr: true},
		{name: "above max", cost: bcrypt.MaxCost + 1, wantErr: true},
		{name: "min", cost: bcrypt.MinCost},
		{name: "twelve", cost: 12},
		{name: "max", cost: bcrypt.MaxCost},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoder, err := password.NewBcryptEncoder(tc.cost)

			if tc.wantErr {
				var costErr bcrypt.InvalidCostError
				assert.ErrorAs(t, err, &costErr)
				assert.Nil(t, encoder)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cost, encoder.Cost())
		})
	}
}

func TestMember_WithBcrypt(t *testing.T) {
	// Given: a member hashed with the real encoder
	encoder := newTestEncoder(t)
	m, err := member.Create(member.CreateInfo{
		Email:    "bcrypt@example.com",
		Nickname: "bcrypt",
		Password: "password123",
	}, encoder)
	require.NoError(t, err)

	// Then
	assert.True(t, m.VerifyPassword("password123", encoder))
	assert.False(t, m.VerifyPassword("password12", encoder))
}
