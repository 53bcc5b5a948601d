// Package session issues and verifies anonymous shopper sessions. A session
// is a random id wrapped in a signed token; nothing about the shopper is
// stored server-side, so the engines key their state off the id alone.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTTL = 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrMissingKey   = errors.New("signing key is required")
)

type Manager struct {
	key []byte
}

func NewManager(secretKey string) (*Manager, error) {
	if secretKey == "" {
		return nil, ErrMissingKey
	}
	return &Manager{key: []byte(secretKey)}, nil
}

// Issue mints a token for a brand new session and returns (token, sessionID).
func (m *Manager) Issue() (string, string, error) {
	sessionID := uuid.NewString()

	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.key)
	if err != nil {
		return "", "", err
	}
	return signed, sessionID, nil
}

// Verify returns the session id carried by a valid token.
func (m *Manager) Verify(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.key, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidToken
	}
	return sid, nil
}
