// Package common contains shared constants and sentinel errors used across
// org chart components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the authorization scheme accepted by the access filter.
const BearerScheme = "Bearer"

// UserIDClaim is the application claim that carries the account id.
const UserIDClaim = "user_id"
