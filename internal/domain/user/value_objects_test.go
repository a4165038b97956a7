//go:build unit

package user_test

import (
	"testing"

	"institut-booking/internal/domain/user"
	"institut-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	valid := []string{"claire.dupont@example.com", "a+b@sub.domain.fr"}
	for _, s := range valid {
		_, err := user.NewEmail(s)
		assert.NoError(t, err, s)
	}

	invalid := []string{"", "no-at-sign", "a@b", "a @b.com"}
	for _, s := range invalid {
		_, err := user.NewEmail(s)
		assert.ErrorIs(t, err, user.ErrInvalidEmail, s)
	}
}

func TestPhone(t *testing.T) {
	valid := []string{"0612345678", "+33612345678"}
	for _, s := range valid {
		_, err := user.NewPhone(s)
		assert.NoError(t, err, s)
	}

	invalid := []string{"", "061234567", "06123456789", "12345", "+1"}
	for _, s := range invalid {
		_, err := user.NewPhone(s)
		assert.ErrorIs(t, err, user.ErrInvalidPhone, s)
	}
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("shortderr"[:7])
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	_, err = user.NewPassword("password123")
	assert.NoError(t, err)
}

func TestNewUser(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	assert.Equal(t, "claire.dupont@example.com", u.Email().Value())
	assert.False(t, u.IsAdmin())
	assert.Equal(t, 0, u.LoyaltyPoints())
	assert.True(t, u.IsActive())
	assert.Nil(t, u.LastLogin())
	assert.False(t, u.CreatedAt().IsZero())
	assert.Equal(t, u.CreatedAt(), u.UpdatedAt())
}
