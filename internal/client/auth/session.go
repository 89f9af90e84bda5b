package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessExpiry reads the exp claim of a JWT access token without verifying its signature.
// Подпись проверяет сервер; клиенту нужен только срок, чтобы решить, обновлять ли токен заранее.
func AccessExpiry(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expiry срок access token: из JWT, иначе сохраненный срок из ответа token endpoint.
func (s *Session) Expiry() time.Time {
	if exp, ok := AccessExpiry(s.AccessToken); ok {
		return exp
	}
	return s.ExpiresAt
}

// Expired reports whether the access token expires within skew of now.
// Непрозрачный токен без срока считается действующим.
func (s *Session) Expired(now time.Time, skew time.Duration) bool {
	exp := s.Expiry()
	if exp.IsZero() {
		return false
	}
	return !now.Add(skew).Before(exp)
}
