package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidSessionToken is returned for malformed, tampered or wrongly signed tokens.
	ErrInvalidSessionToken = errors.New("invalid session token")
	// ErrSessionTokenExpired is returned for a well-formed token past its expiry.
	ErrSessionTokenExpired = errors.New("session token expired")
)

const sessionIssuer = "storefront-cart"

// SessionTokens issues and validates the signed tokens that identify a shopper's cart.
type SessionTokens interface {
	// Issue starts a new session and returns its ID with a signed token.
	Issue() (sessionID, token string, err error)
	// Renew signs a fresh token for an existing session.
	Renew(sessionID string) (string, error)
	// Validate returns the session ID of a token and whether it should be renewed.
	Validate(token string) (sessionID string, renew bool, err error)
}

// SessionTokenConfig holds configuration for session tokens.
type SessionTokenConfig struct {
	SecretKey string
	TTL       time.Duration
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

// SessionTokenService signs session tokens with HS256.
type SessionTokenService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewSessionTokenService creates a SessionTokenService.
func NewSessionTokenService(cfg SessionTokenConfig) (*SessionTokenService, error) {
	if len(cfg.SecretKey) < 32 {
		return nil, errors.New("session secret must be at least 32 bytes")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * 24 * time.Hour
	}
	return &SessionTokenService{secretKey: []byte(cfg.SecretKey), ttl: cfg.TTL, now: time.Now}, nil
}

func (s *SessionTokenService) Issue() (string, string, error) {
	sessionID := uuid.New().String()
	token, err := s.Renew(sessionID)
	if err != nil {
		return "", "", err
	}
	return sessionID, token, nil
}

func (s *SessionTokenService) Renew(sessionID string) (string, error) {
	now := s.now()
	claims := &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// Validate accepts tokens signed by this service. A token past half of its lifetime
// is reported for renewal so active shoppers keep their cart.
func (s *SessionTokenService) Validate(tokenString string) (string, bool, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", false, ErrSessionTokenExpired
		}
		return "", false, ErrInvalidSessionToken
	}
	if !token.Valid || claims.Subject == "" {
		return "", false, ErrInvalidSessionToken
	}

	renew := claims.ExpiresAt.Sub(s.now()) < s.ttl/2
	return claims.Subject, renew, nil
}
