package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/orgchart/internal/common"
	"github.com/dmitrijs2005/orgchart/internal/logging"
	"github.com/dmitrijs2005/orgchart/internal/server/auth"
)

// TokenDecoder verifies a token and returns its claims.
type TokenDecoder interface {
	Decode(token string) (auth.Claims, error)
}

// AccessFilter admits a request only with a valid bearer token. Per request
// it either writes a rejection or calls next with the caller's auth.Identity
// in the context, never both:
//
//   - no bearer token: 400 "missing token"
//   - token fails verification (malformed, tampered, expired, wrong issuer): 400 "invalid token"
//   - any other decode failure, or a missing or non-numeric user_id claim: 500
func AccessFilter(tokens TokenDecoder, logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeError(w, http.StatusBadRequest, "missing token")
				return
			}

			claims, err := tokens.Decode(token)
			if err != nil {
				if errors.Is(err, common.ErrInvalidToken) {
					writeError(w, http.StatusBadRequest, "invalid token")
					return
				}
				logger.Error(r.Context(), "token decode failed", "error", err)
				writeError(w, http.StatusInternalServerError, internalErrorMessage)
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				logger.Error(r.Context(), "token carries no usable user id", "error", err)
				writeError(w, http.StatusInternalServerError, internalErrorMessage)
				return
			}

			ctx := auth.WithIdentity(r.Context(), auth.Identity{UserID: userID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get(common.AuthorizationHeaderName))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
