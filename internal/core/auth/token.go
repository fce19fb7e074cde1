package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed token lifetime from issuance. There is no leeway on
// expiry: a token one instant past exp is rejected.
const TokenTTL = time.Hour

// ErrTokenExpired and ErrTokenInvalid let callers tell a stale token apart
// from a forged or malformed one. Handlers may still map both to the same
// HTTP status.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the verified identity a token asserts.
type Claims struct {
	SubjectID string
	Role      string
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies bearer tokens with a shared HS256 secret.
// The secret is immutable for the process lifetime.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = TokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue produces a compact signed token carrying the subject id, role,
// issued-at, and expiry.
func (i *TokenIssuer) Issue(subjectID, role string) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// It returns ErrTokenExpired for a stale token and ErrTokenInvalid for
// anything else: bad signature, malformed input, or a foreign algorithm.
func (i *TokenIssuer) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	return &Claims{SubjectID: claims.Subject, Role: claims.Role}, nil
}
