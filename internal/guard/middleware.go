package guard

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"mutqin-client/internal/session"
	"mutqin-client/internal/shared/webutil"
)

// RoleResolver reports the current role for a browser session. The wired
// implementation reads the token claims and falls back to a profile fetch
// for opaque tokens.
type RoleResolver func(ctx context.Context, sid string) (Role, error)

// Middleware executes the Decide directive on route entry. Routes with no
// required roles only gate on authentication and never resolve the role.
func Middleware(store session.Store, resolve RoleResolver, required ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sid := webutil.SID(ctx)

		authenticated := session.IsAuthenticated(ctx, store, sid)

		var role Role
		if authenticated && len(required) > 0 {
			resolved, err := resolve(ctx, sid)
			if err != nil {
				// Unresolvable role counts as no role: the user keeps
				// their session but lands on the student dashboard.
				log.Warn().Err(err).Msg("Could not resolve role for guarded route")
			}
			role = resolved
		}

		decision := Decide(authenticated, role, required, "")
		switch decision.Directive {
		case RedirectLogin, RedirectFallback:
			if decision.Target == c.Request.URL.Path {
				// Never redirect a route to itself.
				c.Next()
				return
			}
			c.Redirect(http.StatusFound, decision.Target)
			c.Abort()
		default:
			c.Next()
		}
	}
}
