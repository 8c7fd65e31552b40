// Package client talks to the org chart HTTP API on behalf of the CLI.
//
// HTTPClient implements Client. Non-2xx responses become *APIError values
// carrying the server's {"error": ...} message; errors.Is matches them
// against common.ErrorValidation (400), ErrUnauthorized (401),
// common.ErrorNotFound (404) and common.ErrorInternal (5xx). A request that
// never reached the server wraps ErrUnavailable.
package client
