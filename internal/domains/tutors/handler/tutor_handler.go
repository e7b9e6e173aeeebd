package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mutqin-client/internal/domains/tutors"
	"mutqin-client/internal/shared/webutil"
)

type TutorHandler struct {
	service   *tutors.Service
	responder *webutil.Responder
}

func NewTutorHandler(service *tutors.Service, responder *webutil.Responder) *TutorHandler {
	return &TutorHandler{
		service:   service,
		responder: responder,
	}
}

func (h *TutorHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "tutors.html", gin.H{
		"Tutors": list,
	})
}

func (h *TutorHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusOK, "error.html", gin.H{
			"Message": "معرف المعلم غير صحيح",
		})
		return
	}

	tutor, err := h.service.ByID(c.Request.Context(), id)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "tutor_detail.html", gin.H{
		"Tutor": tutor,
	})
}
