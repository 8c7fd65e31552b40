package rest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/orgchart/internal/common"
	"github.com/dmitrijs2005/orgchart/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// guarded wraps a handler that records whether it ran and which identity it saw.
func guarded(dec TokenDecoder) (http.Handler, *bool, *auth.Identity) {
	called := false
	var seen auth.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seen, _ = auth.IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return AccessFilter(dec, discardLogger())(next), &called, &seen
}

func serveWithHeader(h http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/persons", nil)
	if header != "" {
		req.Header.Set(common.AuthorizationHeaderName, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAccessFilter_MissingToken(t *testing.T) {
	for _, header := range []string{"", "   ", "Bearer", "Bearer    ", "Basic dXNlcjpwYXNz", "token-without-scheme"} {
		h, called, _ := guarded(testCodec())
		rec := serveWithHeader(h, header)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "header %q", header)
		assert.Equal(t, "missing token", errorMessage(t, rec))
		assert.False(t, *called, "next must not run for header %q", header)
	}
}

func TestAccessFilter_ExpiredToken(t *testing.T) {
	expired, err := auth.NewCodec("test-secret", -time.Minute, "auth0").Encode(common.UserIDClaim, "7")
	require.NoError(t, err)

	h, called, _ := guarded(testCodec())
	rec := serveWithHeader(h, "Bearer "+expired)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid token", errorMessage(t, rec))
	assert.False(t, *called)
}

func TestAccessFilter_InvalidToken(t *testing.T) {
	foreign, err := auth.NewCodec("other-secret", time.Hour, "auth0").Encode(common.UserIDClaim, "7")
	require.NoError(t, err)

	for _, tok := range []string{"garbage", "a.b.c", foreign} {
		h, called, _ := guarded(testCodec())
		rec := serveWithHeader(h, "Bearer "+tok)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid token", errorMessage(t, rec))
		assert.False(t, *called)
	}
}

func TestAccessFilter_DecoderFailureIsInternal(t *testing.T) {
	h, called, _ := guarded(decoderFunc(func(string) (auth.Claims, error) {
		return nil, auth.ErrCodecMisconfigured
	}))
	rec := serveWithHeader(h, "Bearer abc")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, internalErrorMessage, errorMessage(t, rec))
	assert.False(t, *called)
}

func TestAccessFilter_UnusableUserIDIsInternal(t *testing.T) {
	cases := map[string]auth.Claims{
		"missing":     {"iss": "auth0"},
		"non-numeric": {common.UserIDClaim: "seven"},
		"wrong type":  {common.UserIDClaim: true},
	}
	for name, claims := range cases {
		t.Run(name, func(t *testing.T) {
			h, called, _ := guarded(decoderFunc(func(string) (auth.Claims, error) {
				return claims, nil
			}))
			rec := serveWithHeader(h, "Bearer abc")

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.False(t, *called)
		})
	}
}

func TestAccessFilter_ValidTokenPassesIdentity(t *testing.T) {
	h, called, seen := guarded(testCodec())
	rec := serveWithHeader(h, "bearer "+validToken(t))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
	assert.Equal(t, auth.Identity{UserID: 7}, *seen)
	assert.Empty(t, rec.Header().Get("Content-Type"))
}

func TestAccessFilter_WrappedInvalidTokenFromDecoder(t *testing.T) {
	h, called, _ := guarded(decoderFunc(func(string) (auth.Claims, error) {
		return nil, errors.Join(errors.New("bad signature"), common.ErrInvalidToken)
	}))
	rec := serveWithHeader(h, "Bearer abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, *called)
}
