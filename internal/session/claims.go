package session

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity hints carried inside the bearer token. The
// backend is the only verifier; claims are read unverified here purely to
// avoid a profile round-trip when deciding route access.
type Claims struct {
	Username string
	Email    string
	Role     string
}

// ParseClaims extracts identity claims from a stored scheme-prefixed
// token. ok is false for opaque (non-JWT) tokens; callers then fall back
// to fetching the profile.
func ParseClaims(token string) (Claims, bool) {
	raw := strings.TrimPrefix(token, scheme)
	if raw == "" {
		return Claims{}, false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return Claims{}, false
	}

	c := Claims{
		Username: stringClaim(claims, "username", "sub"),
		Email:    stringClaim(claims, "email"),
		Role:     strings.ToUpper(stringClaim(claims, "role")),
	}
	if c.Role == "" && c.Username == "" {
		return Claims{}, false
	}
	return c, true
}

func stringClaim(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
