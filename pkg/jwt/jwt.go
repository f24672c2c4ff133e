package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken token is malformed or signed with the wrong key/method
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken token has expired
	ErrExpiredToken = errors.New("expired token")
)

// Token types carried in the typ claim. Access tokens authenticate
// requests; refresh tokens are only good for minting a new pair.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the token payload. The subject of every token is the account
// email; the core resolves it to a domain profile per request.
type Claims struct {
	jwt.RegisteredClaims
	Email       string `json:"email"`
	DisplayName string `json:"name,omitempty"`
	TokenType   string `json:"typ,omitempty"`
}

// Manager issues and verifies HMAC-signed tokens
type Manager struct {
	secretKey       []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
}

// NewManager creates a token manager
func NewManager(secret string, accessDuration, refreshDuration time.Duration) *Manager {
	return &Manager{
		secretKey:       []byte(secret),
		accessDuration:  accessDuration,
		refreshDuration: refreshDuration,
	}
}

// GenerateAccessToken issues a short-lived access token
func (m *Manager) GenerateAccessToken(email, displayName string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessDuration)),
		},
		Email:       email,
		DisplayName: displayName,
		TokenType:   TokenTypeAccess,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// GenerateRefreshToken issues a long-lived refresh token
func (m *Manager) GenerateRefreshToken(email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.refreshDuration)),
		},
		Email:     email,
		TokenType: TokenTypeRefresh,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// VerifyToken parses and validates a token string
func (m *Manager) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
