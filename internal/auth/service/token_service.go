package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/adamkopczynski/todo-api/internal/auth/service TokenGenerator

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/adamkopczynski/todo-api/internal/errors"
)

type TokenGenerator interface {
	Issue(userID, scope string) (string, error)
	Verify(token string) (*SessionClaims, error)
}

// TokenService signs and verifies session tokens with a single
// process-wide HMAC secret. Expiry is optional: a zero expiry issues
// tokens without an exp claim, which is the historical behavior of
// this API.
type TokenService struct {
	Secret string
	Expiry time.Duration
}

type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Scope  string `json:"scope"`
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		Secret: secret,
		Expiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// Issue encodes (userID, scope) into a signed HS256 token safe for
// header transport.
func (ts *TokenService) Issue(userID, scope string) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		UserID: userID,
		Scope:  scope,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ts.Expiry > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ts.Expiry))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Verify parses and validates a token string. Every failure mode —
// malformed input, forged signature, unexpected algorithm, expired
// claim — comes back as ErrInvalidToken; nothing panics past this
// boundary.
func (ts *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(ts.Secret), nil
	})

	if err != nil || !token.Valid {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}
