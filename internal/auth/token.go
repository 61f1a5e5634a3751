package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/shopbazar/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of an access token
const DefaultTokenTTL = 7 * 24 * time.Hour

var (
	ErrMissingSecret = errors.New("token secret is empty")
	ErrInvalidToken  = errors.New("invalid token")
)

// TokenManager issues and verifies access tokens
type TokenManager interface {
	Issue(claim domain.SessionClaim) (string, error)
	Verify(token string) (domain.SessionClaim, error)
}

// Claims is the JWT payload: the session claim plus registered expiry fields.
// Nothing else is accepted from the caller.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWT implements TokenManager with HMAC-SHA256 and a single shared secret
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWT creates a token manager. An empty secret is a configuration error.
func NewJWT(secret string, ttl time.Duration) (*JWT, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWT{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token for the claim that expires ttl after now
func (j *JWT) Issue(claim domain.SessionClaim) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Name:  claim.Name,
		Email: claim.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	})

	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the embedded claim.
// Every failure wraps ErrInvalidToken.
func (j *JWT) Verify(tokenString string) (domain.SessionClaim, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return domain.SessionClaim{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return domain.SessionClaim{}, ErrInvalidToken
	}

	return domain.SessionClaim{Name: claims.Name, Email: claims.Email}, nil
}
