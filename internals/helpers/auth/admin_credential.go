// file: internals/helpers/auth/admin_credential.go
package auth

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"iagallery_backend/internals/configs"
)

// CheckAdminPassword verifies the shared admin secret. A bcrypt hash in
// ADMIN_PASSWORD_HASH wins over the plaintext ADMIN_PASSWORD fallback.
// An empty candidate never matches, even against an empty configured value.
func CheckAdminPassword(candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return false
	}
	if h := configs.AdminPasswordHash; h != "" {
		return bcrypt.CompareHashAndPassword([]byte(h), []byte(candidate)) == nil
	}
	if p := configs.AdminPassword; p != "" {
		return subtle.ConstantTimeCompare([]byte(p), []byte(candidate)) == 1
	}
	return false
}

// AdminTokenTTL is how long an issued admin session token stays valid.
const AdminTokenTTL = 12 * time.Hour

// IssueAdminToken mints a short-lived admin JWT after a successful login.
func IssueAdminToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(AdminTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

// ParseAdminToken validates a bearer token and the admin role claim.
func ParseAdminToken(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" || configs.JWTSecret == "" {
		return false
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil || !tok.Valid {
		return false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}
