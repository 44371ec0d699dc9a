// Package auth implements the service token scheme collaborator services
// use to call the engine's API.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fangate-io/fangate/internal/shared/biztime"
)

// ServiceTokenManager issues and verifies the HMAC-signed tokens that
// authenticate collaborator services such as the chat bot.
type ServiceTokenManager struct {
	secret []byte
	ttl    time.Duration
}

// ServiceClaims are the claims carried by a service token.
type ServiceClaims struct {
	ServiceName string `json:"service_name"`
	jwt.RegisteredClaims
}

// NewServiceTokenManager creates a manager with the shared signing secret.
func NewServiceTokenManager(secret string, ttl time.Duration) *ServiceTokenManager {
	return &ServiceTokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate issues a token for the named collaborator service.
func (m *ServiceTokenManager) Generate(serviceName string) (string, error) {
	now := biztime.NowUTC()
	claims := ServiceClaims{
		ServiceName: serviceName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   serviceName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign service token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the service name.
func (m *ServiceTokenManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ServiceClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid service token: %w", err)
	}

	claims, ok := token.Claims.(*ServiceClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid service token claims")
	}
	return claims.ServiceName, nil
}
