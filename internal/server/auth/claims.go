package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/orgchart/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrClaimMissing   = errors.New("claim missing")
	ErrClaimMalformed = errors.New("claim malformed")
)

// Claims is the verified payload of a token. Numbers decode as json.Number.
type Claims map[string]any

// Issuer returns the iss claim, or "" when absent.
func (c Claims) Issuer() string {
	iss, _ := jwt.MapClaims(c).GetIssuer()
	return iss
}

// ExpiresAt returns the exp claim, or the zero time when absent.
func (c Claims) ExpiresAt() time.Time {
	exp, err := jwt.MapClaims(c).GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// UserID parses the user_id claim. Both the string form issued by this
// server ("42") and a bare JSON number are accepted.
func (c Claims) UserID() (int64, error) {
	v, ok := c[common.UserIDClaim]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrClaimMissing, common.UserIDClaim)
	}

	var raw string
	switch value := v.(type) {
	case string:
		raw = value
	case json.Number:
		raw = value.String()
	default:
		return 0, fmt.Errorf("%w: %s has type %T", ErrClaimMalformed, common.UserIDClaim, v)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrClaimMalformed, common.UserIDClaim, raw)
	}
	return id, nil
}
