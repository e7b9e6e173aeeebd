package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mutqin-client/internal/domains/profile"
	"mutqin-client/internal/domains/progress"
	"mutqin-client/internal/domains/sessions"
	"mutqin-client/internal/platform/httpapi"
	"mutqin-client/internal/shared/webutil"
)

// refreshSeconds drives the dashboards' own auto-refresh; the page
// reloads itself every five minutes.
const refreshSeconds = 300

// DashboardHandler composes the per-role home views from the profile,
// sessions and progress services.
type DashboardHandler struct {
	profiles  *profile.Service
	sessions  *sessions.Service
	progress  *progress.Service
	responder *webutil.Responder
}

func NewDashboardHandler(
	profiles *profile.Service,
	sessions *sessions.Service,
	progress *progress.Service,
	responder *webutil.Responder,
) *DashboardHandler {
	return &DashboardHandler{
		profiles:  profiles,
		sessions:  sessions,
		progress:  progress,
		responder: responder,
	}
}

func (h *DashboardHandler) Student(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.profiles.Get(ctx)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}

	records, err := h.sessions.StudentSessions(ctx, p.Username)
	if err != nil && !isNotFound(err) {
		h.responder.Fail(c, err)
		return
	}

	items, err := h.progress.Report(ctx, p.Username)
	if err != nil && !isNotFound(err) {
		h.responder.Fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "student_dashboard.html", gin.H{
		"Profile":        p,
		"Sessions":       records,
		"Progress":       items,
		"RefreshSeconds": refreshSeconds,
	})
}

func (h *DashboardHandler) Tutor(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.profiles.Get(ctx)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}

	records, err := h.sessions.TutorSessions(ctx, p.Username)
	if err != nil && !isNotFound(err) {
		h.responder.Fail(c, err)
		return
	}

	students, err := h.progress.TutorStudents(ctx, p.Username)
	if err != nil && !isNotFound(err) {
		h.responder.Fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "tutor_dashboard.html", gin.H{
		"Profile":        p,
		"Sessions":       records,
		"Students":       students,
		"RefreshSeconds": refreshSeconds,
	})
}

// isNotFound: an empty dashboard section is not an error.
func isNotFound(err error) bool {
	apiErr, ok := httpapi.AsError(err)
	return ok && apiErr.Status == 404
}
