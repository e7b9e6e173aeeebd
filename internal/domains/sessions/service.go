package sessions

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"mutqin-client/internal/domains/profile"
	"mutqin-client/internal/platform/httpapi"
	"mutqin-client/internal/validate"
)

// Service handles booking and confirmation against the scheduling-backed
// session endpoints. The profile service resolves student ids when the
// caller does not know them.
type Service struct {
	api      *httpapi.Client
	profiles *profile.Service
}

func NewService(api *httpapi.Client, profiles *profile.Service) *Service {
	return &Service{
		api:      api,
		profiles: profiles,
	}
}

func StatusOverrides() httpapi.Overrides {
	return statusOverrides
}

// Book creates a booking and returns the scheduling URL to redirect to.
// A missing student id is resolved through the profile search first, and
// that resolution failing is surfaced as its own outcome.
func (s *Service) Book(ctx context.Context, req BookRequest) (*BookResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, httpapi.ValidationError(validate.FirstMessage(err))
	}

	studentID := req.StudentID
	if studentID == 0 {
		resolved, err := s.profiles.CurrentUserID(ctx)
		if err != nil {
			return nil, resolutionError(err)
		}
		studentID = resolved
	}

	var resp BookResponse
	payload := bookPayload{StudentID: studentID, TutorID: req.TutorID}
	if err := s.api.Post(ctx, "/students/sessions/book", nil, payload, &resp); err != nil {
		return nil, err
	}

	if resp.SchedulingURL == "" {
		return nil, &httpapi.Error{
			Code:    CodeNoSchedulingURL,
			Message: "لم يتم الحصول على رابط الحجز",
		}
	}

	log.Info().Int64("student_id", studentID).Int64("tutor_id", req.TutorID).Msg("Session booked")
	return &resp, nil
}

// Confirm records a completed scheduling pick by its event UUID.
func (s *Service) Confirm(ctx context.Context, req ConfirmRequest) error {
	if err := req.Validate(); err != nil {
		return httpapi.ValidationError(validate.FirstMessage(err))
	}

	studentID := req.StudentID
	if studentID == 0 {
		if req.EmailOrUsername == "" {
			return httpapi.ValidationError("معرف الطالب أو بريده الإلكتروني مطلوب")
		}
		found, err := s.profiles.Search(ctx, req.EmailOrUsername)
		if err != nil {
			return resolutionError(err)
		}
		studentID = found.ID
	}

	query := url.Values{
		"eventUuid": {req.EventUUID},
		"studentId": {strconv.FormatInt(studentID, 10)},
		"tutorId":   {strconv.FormatInt(req.TutorID, 10)},
	}
	if err := s.api.Post(ctx, "/students/sessions/confirm", query, nil, nil); err != nil {
		return applyConfirmOverrides(err)
	}

	log.Info().Str("event_uuid", req.EventUUID).Int64("student_id", studentID).Msg("Session confirmed")
	return nil
}

// StudentSessions lists a student's booked sessions.
func (s *Service) StudentSessions(ctx context.Context, username string) ([]Record, error) {
	var records []Record
	if err := s.api.Get(ctx, "/students/student/"+url.PathEscape(username), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// TutorSessions lists the sessions booked with a tutor (sheikh).
func (s *Service) TutorSessions(ctx context.Context, username string) ([]Record, error) {
	var records []Record
	if err := s.api.Get(ctx, "/students/sheikh/"+url.PathEscape(username), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// resolutionError marks a student-id lookup failure distinctly from the
// booking call itself, keeping the underlying localized message visible.
func resolutionError(err error) error {
	message := "خطأ غير معروف"
	if apiErr, ok := httpapi.AsError(err); ok {
		message = apiErr.Message
	}
	return httpapi.Wrap(CodeStudentResolution, "فشل في جلب معرف الطالب: "+message, err)
}
