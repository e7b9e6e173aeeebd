package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mutqin-client/internal/domains/sessions"
	"mutqin-client/internal/shared/webutil"
)

// schedulingRedirectDelay is how long the confirmation message stays on
// screen before the browser moves to the third-party scheduling page.
const schedulingRedirectDelay = 2

type SessionHandler struct {
	service   *sessions.Service
	responder *webutil.Responder
}

func NewSessionHandler(service *sessions.Service, responder *webutil.Responder) *SessionHandler {
	return &SessionHandler{
		service:   service,
		responder: responder,
	}
}

// Book creates the booking and shows a short confirmation before the
// delayed redirect to the scheduling URL.
func (h *SessionHandler) Book(c *gin.Context) {
	var req sessions.BookRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "booking.html", gin.H{
			"Error": "طلب غير صحيح - تحقق من البيانات المرسلة",
		})
		return
	}

	resp, err := h.service.Book(c.Request.Context(), req)
	if err != nil {
		if h.responder.Expired(c, err) {
			return
		}
		c.HTML(http.StatusOK, "booking.html", gin.H{
			"Error": webutil.Message(err),
		})
		return
	}

	c.HTML(http.StatusOK, "booking.html", gin.H{
		"Message":     "تم إنشاء رابط الحجز بنجاح. جاري التوجيه إلى صفحة الحجز...",
		"RedirectURL": resp.SchedulingURL,
		"Delay":       schedulingRedirectDelay,
	})
}

// ShowConfirm pre-fills the confirmation form from the scheduling
// service's redirect-back query parameters.
func (h *SessionHandler) ShowConfirm(c *gin.Context) {
	c.HTML(http.StatusOK, "confirm.html", gin.H{
		"EventUUID": c.Query("eventUuid"),
		"TutorID":   c.Query("tutorId"),
	})
}

func (h *SessionHandler) Confirm(c *gin.Context) {
	var req sessions.ConfirmRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "confirm.html", gin.H{
			"Error": "بيانات غير صحيحة. تحقق من المعلومات المدخلة",
		})
		return
	}

	if err := h.service.Confirm(c.Request.Context(), req); err != nil {
		if h.responder.Expired(c, err) {
			return
		}
		c.HTML(http.StatusOK, "confirm.html", gin.H{
			"Error":     webutil.Message(err),
			"EventUUID": req.EventUUID,
			"TutorID":   req.TutorID,
		})
		return
	}

	c.HTML(http.StatusOK, "confirm.html", gin.H{
		"Message": "تم تأكيد الجلسة بنجاح",
	})
}
