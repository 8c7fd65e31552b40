// Package auth issues and verifies the signed tokens that authenticate API
// callers, and carries the verified caller identity through a request.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/orgchart/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// ErrCodecMisconfigured is returned when the codec has no secret or issuer.
var ErrCodecMisconfigured = errors.New("token codec misconfigured: secret and issuer are required")

var registeredClaims = map[string]struct{}{
	"iss": {}, "exp": {}, "iat": {}, "nbf": {}, "sub": {}, "aud": {}, "jti": {},
}

// Codec signs and verifies HS256 tokens for one secret, lifetime and issuer.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	secret      []byte
	sessionTime time.Duration
	issuer      string
	now         func() time.Time
}

func NewCodec(secret string, sessionTime time.Duration, issuer string) *Codec {
	return &Codec{
		secret:      []byte(secret),
		sessionTime: sessionTime,
		issuer:      issuer,
		now:         time.Now,
	}
}

// Encode issues a token carrying iss, iat, exp and the single application
// claim key=value. exp is the issue time plus the session time, so a zero
// session time produces a token that is already expired.
func (c *Codec) Encode(key string, value any) (string, error) {
	if len(c.secret) == 0 || c.issuer == "" {
		return "", ErrCodecMisconfigured
	}
	if key == "" {
		return "", fmt.Errorf("%w: claim key is required", common.ErrorValidation)
	}
	if _, ok := registeredClaims[key]; ok {
		return "", fmt.Errorf("%w: claim %q is reserved", common.ErrorValidation, key)
	}

	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": c.issuer,
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(c.sessionTime)),
		key:   value,
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies tokenString and returns its claims. Any verification
// failure wraps common.ErrInvalidToken; an expired token returns
// common.ErrTokenExpired.
func (c *Codec) Decode(tokenString string) (Claims, error) {
	if len(c.secret) == 0 || c.issuer == "" {
		return nil, ErrCodecMisconfigured
	}
	if tokenString == "" {
		return nil, fmt.Errorf("%w: empty token", common.ErrInvalidToken)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithJSONNumber(),
		jwt.WithTimeFunc(c.now),
	)

	claims := jwt.MapClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	return Claims(claims), nil
}
