package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mutqin-client/internal/domains/profile"
	"mutqin-client/internal/shared/webutil"
)

type ProfileHandler struct {
	service   *profile.Service
	responder *webutil.Responder
}

func NewProfileHandler(service *profile.Service, responder *webutil.Responder) *ProfileHandler {
	return &ProfileHandler{
		service:   service,
		responder: responder,
	}
}

func (h *ProfileHandler) Show(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Profile": p,
	})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req profile.UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "profile.html", gin.H{
			"Error": "بيانات غير صحيحة. تحقق من المعلومات المدخلة",
		})
		return
	}

	p, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		if h.responder.Expired(c, err) {
			return
		}
		// Re-render with the current backend state, not the failed edit.
		current, fetchErr := h.service.Get(c.Request.Context())
		if fetchErr != nil {
			h.responder.Fail(c, fetchErr)
			return
		}
		c.HTML(http.StatusOK, "profile.html", gin.H{
			"Profile": current,
			"Error":   webutil.Message(err),
		})
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Profile": p,
		"Message": "تم تحديث الملف الشخصي بنجاح",
	})
}

// Delete destroys the account once the confirmation word matches, then
// sends the user to the login screen.
func (h *ProfileHandler) Delete(c *gin.Context) {
	sid := webutil.SID(c.Request.Context())
	confirmation := c.PostForm("confirmation")

	if err := h.service.Delete(c.Request.Context(), sid, confirmation); err != nil {
		if h.responder.Expired(c, err) {
			return
		}
		current, fetchErr := h.service.Get(c.Request.Context())
		if fetchErr != nil {
			h.responder.Fail(c, fetchErr)
			return
		}
		c.HTML(http.StatusOK, "profile.html", gin.H{
			"Profile": current,
			"Error":   webutil.Message(err),
		})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}
