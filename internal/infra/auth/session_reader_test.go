package auth

import (
	"testing"
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("account_service_secret"))
	require.NoError(t, err)

	return token
}

func TestSessionReader_ValidToken(t *testing.T) {
	reader := NewSessionReader()
	userID := uuid.New().String()
	expiresAt := time.Now().Add(15 * time.Minute).Truncate(time.Second)

	token := signToken(t, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	session, err := reader.ReadSession(token)
	require.NoError(t, err)
	assert.Equal(t, userID, session.Subject)
	assert.Equal(t, token, session.AccessToken)
	assert.True(t, expiresAt.Equal(session.ExpiresAt))
}

func TestSessionReader_Rejects(t *testing.T) {
	expired := signToken(t, jwt.RegisteredClaims{
		Subject:   "user",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "malformed", token: "invalid_token_format"},
		{name: "expired", token: expired},
	}

	reader := NewSessionReader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := reader.ReadSession(tt.token)
			assert.Nil(t, session)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}

func TestSessionReader_NoExpiry(t *testing.T) {
	reader := NewSessionReader()

	session, err := reader.ReadSession(signToken(t, jwt.RegisteredClaims{Subject: "user"}))
	require.NoError(t, err)
	assert.True(t, session.ExpiresAt.IsZero())
}
