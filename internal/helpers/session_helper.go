package helpers

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName matches the cookie checked by the admin gate.
const SessionCookieName = "admin-auth"

// SessionTTL is how long a login stays valid before the admin has to
// present the secret again.
const SessionTTL = 7 * 24 * time.Hour

// IssueSessionToken signs a session marker. It carries no claims beyond
// its expiry; possession is what proves a past successful login.
func IssueSessionToken(secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	return token.SignedString([]byte(secret))
}

// ValidateSessionToken reports whether tokenString is a session marker we
// signed and it has not expired.
func ValidateSessionToken(tokenString, secret string) bool {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	return err == nil && token.Valid
}
