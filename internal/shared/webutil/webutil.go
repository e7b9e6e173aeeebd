// Package webutil carries the browser-session plumbing shared by every
// handler: the session cookie, the sid request context value consumed by
// the transport's token source, and the single top-level listener that
// turns a session-expired signal into a logout redirect.
package webutil

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"mutqin-client/internal/platform/httpapi"
	"mutqin-client/internal/session"
)

const (
	CookieName = "mutqin_sid"

	// Session cookie lifetime. Unrelated to token validity: the backend
	// decides when a token dies.
	cookieMaxAge = 30 * 24 * 3600
)

type ctxKey int

const sidKey ctxKey = 0

func WithSID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, sidKey, sid)
}

// SID returns the browser session id bound to ctx, or "".
func SID(ctx context.Context) string {
	sid, _ := ctx.Value(sidKey).(string)
	return sid
}

// EnsureSession mints a session id cookie on first contact and threads the
// sid through the request context so token sources can find it.
func EnsureSession(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(CookieName)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, sid, cookieMaxAge, "/", "", secure, true)
		}
		c.Set("sid", sid)
		c.Request = c.Request.WithContext(WithSID(c.Request.Context(), sid))
		c.Next()
	}
}

// Responder is the one place that reacts to the transport's typed
// session-expired signal: clear the slot, go to login. Everything else
// renders the localized message.
type Responder struct {
	Store session.Store
}

// Expired intercepts the session-expired signal: clears the slot and
// redirects to login, reporting true. Handlers that render errors inline
// call this first so a dead session never re-renders a form.
func (r *Responder) Expired(c *gin.Context, err error) bool {
	if !errors.Is(err, httpapi.ErrSessionExpired) {
		return false
	}
	sid := SID(c.Request.Context())
	if clearErr := r.Store.Clear(c.Request.Context(), sid); clearErr != nil {
		log.Error().Err(clearErr).Msg("Failed to clear expired session")
	}
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
	return true
}

// Message extracts the localized display message from a service error.
func Message(err error) string {
	if apiErr, ok := httpapi.AsError(err); ok {
		return apiErr.Message
	}
	return httpapi.GetResultMessage(httpapi.CodeUnknown)
}

// Fail terminates the request for a failed service call.
func (r *Responder) Fail(c *gin.Context, err error) {
	if r.Expired(c, err) {
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	c.HTML(http.StatusOK, "error.html", gin.H{
		"Message": Message(err),
	})
	c.Abort()
}
