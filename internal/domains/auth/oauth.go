package auth

import (
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"mutqin-client/internal/config"
)

// OAuth builds the outbound Google authorization URL. The exchange itself
// happens server-side (backend callback or direct token payload); this
// client only starts the dance and verifies the state nonce round-trip.
type OAuth struct {
	conf *oauth2.Config
}

func NewOAuth(cfg config.OAuthConfig) *OAuth {
	return &OAuth{
		conf: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
		},
	}
}

// Enabled reports whether Google login is configured at all.
func (o *OAuth) Enabled() bool {
	return o.conf.ClientID != ""
}

// StateToken mints the CSRF nonce carried through the redirect.
func (o *OAuth) StateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (o *OAuth) AuthURL(state string) string {
	return o.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
}
