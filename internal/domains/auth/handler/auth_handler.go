package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"mutqin-client/internal/domains/auth"
	"mutqin-client/internal/guard"
	"mutqin-client/internal/shared/webutil"
)

const oauthStateCookie = "mutqin_oauth_state"

type AuthHandler struct {
	service   *auth.Service
	oauth     *auth.OAuth
	responder *webutil.Responder
}

func NewAuthHandler(service *auth.Service, oauth *auth.OAuth, responder *webutil.Responder) *AuthHandler {
	return &AuthHandler{
		service:   service,
		oauth:     oauth,
		responder: responder,
	}
}

// ========================================
// LOGIN / SIGNUP
// ========================================

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"GoogleEnabled": h.oauth.Enabled(),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderLogin(c, req.Email, "بيانات غير صحيحة. تحقق من المعلومات المدخلة")
		return
	}

	sid := webutil.SID(c.Request.Context())
	resp, err := h.service.Login(c.Request.Context(), sid, req)
	if err != nil {
		h.renderLogin(c, req.Email, webutil.Message(err))
		return
	}

	c.Redirect(http.StatusFound, guard.DashboardFor(guard.Normalize(resp.User.Role)))
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"GoogleEnabled": h.oauth.Enabled(),
	})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"Error":         "بيانات غير صحيحة. تحقق من المعلومات المدخلة",
			"GoogleEnabled": h.oauth.Enabled(),
		})
		return
	}

	sid := webutil.SID(c.Request.Context())
	resp, err := h.service.Signup(c.Request.Context(), sid, req)
	if err != nil {
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"Error":         webutil.Message(err),
			"Form":          req,
			"GoogleEnabled": h.oauth.Enabled(),
		})
		return
	}

	if resp.Token != "" {
		c.Redirect(http.StatusFound, guard.DashboardFor(guard.Normalize(req.Role)))
		return
	}
	// Account created but not logged in: back to the login form.
	h.renderLoginSuccess(c, "تم إنشاء الحساب بنجاح")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sid := webutil.SID(c.Request.Context())
	if err := h.service.Logout(c.Request.Context(), sid); err != nil {
		log.Error().Err(err).Msg("Logout failed to clear session")
	}
	c.Redirect(http.StatusFound, "/login")
}

// ========================================
// GOOGLE OAUTH
// ========================================

// GoogleStart redirects the browser to the provider's consent screen with
// a fresh state nonce pinned in a short-lived cookie.
func (h *AuthHandler) GoogleStart(c *gin.Context) {
	if !h.oauth.Enabled() {
		h.renderLogin(c, "", "تسجيل الدخول بواسطة Google غير متاح حالياً")
		return
	}

	state, err := h.oauth.StateToken()
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	c.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, h.oauth.AuthURL(state))
}

// GoogleCallback handles both redirect-back variants: the direct success
// payload (token, name, email, googleId) and the authorization code
// (code, state, optional error). Failures render a localized message and
// auto-redirect after a few seconds.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()
	sid := webutil.SID(ctx)

	// Variant 1: direct success payload.
	if token := c.Query("token"); token != "" {
		err := h.service.HandleOAuthToken(ctx, sid,
			token, c.Query("name"), c.Query("email"), c.Query("googleId"))
		if err != nil {
			h.renderOAuthResult(c, webutil.Message(err), "/login", 3)
			return
		}
		h.renderOAuthResult(c, "تم تسجيل الدخول بواسطة Google بنجاح! جاري التوجيه...", "/dashboard", 2)
		return
	}

	// Provider-reported error.
	if oauthErr := c.Query("error"); oauthErr != "" {
		message := "خطأ في OAuth: " + oauthErr
		if oauthErr == "access_denied" {
			message = "تم إلغاء عملية التسجيل بواسطة Google"
		}
		h.renderOAuthResult(c, message, "/signup", 3)
		return
	}

	// Variant 2: authorization code.
	code := c.Query("code")
	state := c.Query("state")
	if code == "" {
		h.renderOAuthResult(c, "معاملات OAuth مفقودة", "/signup", 3)
		return
	}
	if stored, err := c.Cookie(oauthStateCookie); err != nil || stored == "" || stored != state {
		h.renderOAuthResult(c, "حالة OAuth غير صحيحة. حاول مرة أخرى", "/signup", 3)
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	if _, err := h.service.HandleOAuthCode(ctx, sid, code, state); err != nil {
		h.renderOAuthResult(c, webutil.Message(err), "/signup", 3)
		return
	}
	h.renderOAuthResult(c, "تم تسجيل الدخول بواسطة Google بنجاح! جاري التوجيه...", "/dashboard", 2)
}

// ========================================
// RENDER HELPERS
// ========================================

func (h *AuthHandler) renderLogin(c *gin.Context, email, errMsg string) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Error":         errMsg,
		"Email":         email,
		"GoogleEnabled": h.oauth.Enabled(),
	})
}

func (h *AuthHandler) renderLoginSuccess(c *gin.Context, message string) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Message":       message,
		"GoogleEnabled": h.oauth.Enabled(),
	})
}

func (h *AuthHandler) renderOAuthResult(c *gin.Context, message, target string, delaySeconds int) {
	c.HTML(http.StatusOK, "oauth.html", gin.H{
		"Message": message,
		"Target":  target,
		"Delay":   delaySeconds,
	})
}
