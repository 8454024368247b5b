package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role names carried in token claims. Each role has its own signing secret,
// so an admin token never verifies against the user scope and vice versa.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	SubjectID string `json:"id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies tokens for a single role scope.
type TokenManager struct {
	secret []byte
	role   string
	ttl    time.Duration
}

// NewTokenManager builds a manager for one role scope. A ttl of zero issues
// tokens without an exp claim.
func NewTokenManager(secret, role string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		role:   role,
		ttl:    ttl,
	}
}

// Role returns the scope this manager signs for.
func (m *TokenManager) Role() string {
	return m.role
}

// Issue signs a token embedding the subject id for this manager's scope.
func (m *TokenManager) Issue(subjectID string) (string, error) {
	now := time.Now().UTC()

	claims := Claims{
		SubjectID: subjectID,
		Role:      m.role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			Subject:  subjectID,
		},
	}
	if m.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses the token against this scope's secret and returns the
// subject id. Any failure collapses into ErrInvalidToken; callers must not
// distinguish missing from malformed from expired.
func (m *TokenManager) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	// Defense in depth: disjoint secrets already isolate the scopes, but a
	// shared-secret misconfiguration must not let roles bleed into each other.
	if claims.Role != m.role {
		return "", ErrInvalidToken
	}
	if claims.SubjectID == "" {
		return "", ErrInvalidToken
	}

	return claims.SubjectID, nil
}
