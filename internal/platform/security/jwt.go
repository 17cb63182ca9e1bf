package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken means the token is malformed, forged, or for another issuer.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken means the token was valid but has expired.
	ErrExpiredToken = errors.New("token expired")
)

// SessionClaims identify a signed-in user. The subject is the user id.
type SessionClaims struct {
	Username  string `json:"username"`
	Superuser bool   `json:"superuser,omitempty"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *SessionClaims) UserID() (uint64, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return id, nil
}

// Sessions signs and verifies HS256 session tokens.
type Sessions struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewSessions creates a token signer.
func NewSessions(secret, issuer string, ttl time.Duration) *Sessions {
	return &Sessions{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token for the given user.
func (s *Sessions) Issue(userID uint64, username string, superuser bool) (string, time.Time, error) {
	now := s.now().UTC()
	expires := now.Add(s.ttl)

	claims := SessionClaims{
		Username:  username,
		Superuser: superuser,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(userID, 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expires, nil
}

// Parse verifies a token and returns its claims.
func (s *Sessions) Parse(token string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := claims.UserID(); err != nil {
		return nil, err
	}

	return claims, nil
}
