// Package session is the credential store: one token slot per browser
// session. The token is persisted already prefixed with its auth scheme
// and handed to the transport verbatim. There is no expiry tracking; a
// token is valid until the backend answers 401.
package session

import (
	"context"
	"strings"
)

const scheme = "Bearer "

// Store holds the bearer token for each browser session id. Writes
// overwrite atomically; last write wins.
type Store interface {
	SetToken(ctx context.Context, sid, token string) error
	// Token returns the stored token or "" when the slot is empty.
	Token(ctx context.Context, sid string) (string, error)
	Clear(ctx context.Context, sid string) error
}

// EnsureScheme returns the token prefixed with its auth scheme. Tokens
// arriving from the OAuth success redirect are sometimes raw; stored
// tokens must always carry the prefix.
func EnsureScheme(token string) string {
	if token == "" {
		return ""
	}
	if strings.HasPrefix(token, scheme) {
		return token
	}
	return scheme + token
}

// normalize filters the corrupted-storage sentinels: the literal strings
// "undefined" and "null" count as no token at all.
func normalize(raw string) string {
	if raw == "" || raw == "undefined" || raw == "null" {
		return ""
	}
	return raw
}

// IsAuthenticated reports whether sid has a usable token. Token presence
// alone decides; profile data never gates authentication.
func IsAuthenticated(ctx context.Context, s Store, sid string) bool {
	if sid == "" {
		return false
	}
	token, err := s.Token(ctx, sid)
	if err != nil {
		return false
	}
	return token != ""
}
