package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func newTestService() *Service {
	return NewService(testSecret, 24*time.Hour)
}

func TestService_IssueAndVerify(t *testing.T) {
	svc := newTestService()

	signed, err := svc.Issue("user-1", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "alice@example.com", claims.Email)

	// exp must be iat + ttl
	iat := claims.IssuedAt.Time
	exp := claims.ExpiresAt.Time
	assert.Equal(t, 24*time.Hour, exp.Sub(iat))
}

func TestService_Verify_Expired(t *testing.T) {
	// Negative TTL produces an already-expired token.
	svc := NewService(testSecret, -time.Minute)

	signed, err := svc.Issue("user-1", "alice@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestService_Verify_InvalidSignature(t *testing.T) {
	svc := newTestService()

	signed, err := svc.Issue("user-1", "alice@example.com")
	require.NoError(t, err)

	// Flip the last signature byte.
	tampered := signed[:len(signed)-1]
	if signed[len(signed)-1] == 'A' {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestService_Verify_WrongSecret(t *testing.T) {
	signed, err := NewService("other-secret", time.Hour).Issue("user-1", "a@b.c")
	require.NoError(t, err)

	_, err = newTestService().Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestService_Verify_Malformed(t *testing.T) {
	svc := newTestService()

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrMalformed, "token %q", tok)
	}
}

func TestService_Verify_MissingSubject(t *testing.T) {
	svc := newTestService()

	// A well-signed token without a subject is rejected.
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email: "a@b.c",
	})
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestExtractBearer(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{name: "valid", header: "Bearer abc", want: "abc"},
		{name: "missing header", header: "", want: ""},
		{name: "lowercase scheme", header: "bearer abc", want: ""},
		{name: "wrong scheme", header: "Token abc", want: ""},
		{name: "empty remainder", header: "Bearer ", want: ""},
		{name: "no space", header: "Bearerabc", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractBearer(tc.header))
		})
	}
}
