package progress

import (
	"context"
	"errors"
	"net/url"

	"github.com/rs/zerolog/log"

	"mutqin-client/internal/platform/httpapi"
	"mutqin-client/internal/validate"
)

var errInvalidLink = errors.New("رابط Calendly غير صحيح. الصيغة المطلوبة: https://calendly.com/username/event")

const (
	CodeTutorNotFound httpapi.Code = "TUTOR_NOT_FOUND"
)

var statusOverrides = httpapi.Overrides{
	400: {Message: "رابط غير صحيح أو بيانات مفقودة"},
	403: {Message: "ليس لديك صلاحية لتحديث رابط الجلسات"},
	404: {Code: CodeTutorNotFound, Message: "المعلم غير موجود"},
	500: {Message: "خطأ في الخادم أثناء معالجة بيانات التقدم"},
}

type Service struct {
	api *httpapi.Client
}

func NewService(api *httpapi.Client) *Service {
	return &Service{api: api}
}

func StatusOverrides() httpapi.Overrides {
	return statusOverrides
}

// Report fetches a student's progress entries.
func (s *Service) Report(ctx context.Context, username string) ([]Item, error) {
	var items []Item
	if err := s.api.Get(ctx, "/api/tutor/progress/"+url.PathEscape(username), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// TutorStudents fetches the roster of students assigned to a tutor.
func (s *Service) TutorStudents(ctx context.Context, username string) ([]StudentSummary, error) {
	var students []StudentSummary
	path := "/api/tutor/progress/sheikhs/" + url.PathEscape(username) + "/students"
	if err := s.api.Get(ctx, path, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// UpdateEventTypeLink publishes a tutor's Calendly scheduling link after
// local format validation.
func (s *Service) UpdateEventTypeLink(ctx context.Context, req UpdateLinkRequest) error {
	if err := req.Validate(); err != nil {
		return httpapi.ValidationError(validate.FirstMessage(err))
	}

	path := "/api/tutor/progress/event-type-link/" + url.PathEscape(req.Username)
	if err := s.api.Post(ctx, path, nil, updateLinkPayload{Link: req.Link}, nil); err != nil {
		return err
	}

	log.Info().Str("username", req.Username).Msg("Scheduling link updated")
	return nil
}
