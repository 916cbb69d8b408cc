package session

import "strings"

const bearerPrefix = "Bearer "

// Normalize converts a raw token to the canonical Authorization header form.
// It is idempotent: an already-prefixed token comes back unchanged, a bare
// token gains the prefix exactly once.
func Normalize(token string) string {
	if token == "" || strings.HasPrefix(token, bearerPrefix) {
		return token
	}
	return bearerPrefix + token
}
