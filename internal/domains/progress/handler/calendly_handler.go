package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mutqin-client/internal/domains/profile"
	"mutqin-client/internal/domains/progress"
	"mutqin-client/internal/shared/webutil"
)

// CalendlyHandler lets a tutor publish the scheduling link students book
// through.
type CalendlyHandler struct {
	service   *progress.Service
	profiles  *profile.Service
	responder *webutil.Responder
}

func NewCalendlyHandler(service *progress.Service, profiles *profile.Service, responder *webutil.Responder) *CalendlyHandler {
	return &CalendlyHandler{
		service:   service,
		profiles:  profiles,
		responder: responder,
	}
}

func (h *CalendlyHandler) Show(c *gin.Context) {
	p, err := h.profiles.Get(c.Request.Context())
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "calendly.html", gin.H{
		"Username": p.Username,
	})
}

func (h *CalendlyHandler) Update(c *gin.Context) {
	var req progress.UpdateLinkRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "calendly.html", gin.H{
			"Error": "بيانات غير صحيحة. تحقق من المعلومات المدخلة",
		})
		return
	}

	if err := h.service.UpdateEventTypeLink(c.Request.Context(), req); err != nil {
		if h.responder.Expired(c, err) {
			return
		}
		c.HTML(http.StatusOK, "calendly.html", gin.H{
			"Error":    webutil.Message(err),
			"Username": req.Username,
			"Link":     req.Link,
		})
		return
	}

	c.HTML(http.StatusOK, "calendly.html", gin.H{
		"Message":  "تم تحديث رابط الجلسات بنجاح",
		"Username": req.Username,
		"Link":     req.Link,
	})
}
