package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failure modes. Handlers treat all of them as 401; they are
// distinct so tests and logs can tell why a token was rejected.
var (
	ErrMalformed        = errors.New("token malformed")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
)

const bearerPrefix = "Bearer "

// Claims is the full claim set carried by an access token:
// {sub, email, iat, exp}.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Service issues and verifies HS256-signed bearer tokens. The secret and TTL
// come from startup configuration and are immutable afterwards; rotating the
// secret invalidates every outstanding token (accepted limitation — tokens
// are stateless and cannot be revoked individually).
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration { return s.ttl }

// Issue signs a token for the given user id and email, valid for the
// configured TTL from now.
func (s *Service) Issue(subject, email string) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Email: email,
	})
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token and returns its claims. Verification is
// pure: it consults no store, so a token for a since-deleted user still
// verifies — callers resolve the subject against persistence themselves.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrMalformed
		}
	}
	if !tok.Valid || claims.Subject == "" {
		return nil, ErrMalformed
	}
	return claims, nil
}

// ExtractBearer pulls the token out of an Authorization header value.
// The scheme is matched case-sensitively with a single space; a missing
// header, wrong scheme, or empty remainder yields "".
func ExtractBearer(headerValue string) string {
	if !strings.HasPrefix(headerValue, bearerPrefix) {
		return ""
	}
	return headerValue[len(bearerPrefix):]
}
