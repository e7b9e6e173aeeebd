package voicechat

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the chat entry page and the outbound redirect.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "chat.html", gin.H{
		"URL":       h.service.URL(),
		"Available": h.service.Available(),
	})
}

// Go performs the hard navigation to the external chat service.
func (h *Handler) Go(c *gin.Context) {
	c.Redirect(http.StatusFound, h.service.URL())
}
