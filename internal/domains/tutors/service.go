package tutors

import (
	"context"
	"net/url"
	"strconv"

	"mutqin-client/internal/platform/httpapi"
)

const (
	CodeTutorsNotFound httpapi.Code = "TUTORS_NOT_FOUND"
)

var statusOverrides = httpapi.Overrides{
	404: {Code: CodeTutorsNotFound, Message: "لم يتم العثور على معلمين"},
	500: {Message: "خطأ في الخادم الداخلي"},
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

// List fetches every registered tutor.
func (s *Service) List(ctx context.Context) ([]Tutor, error) {
	query := url.Values{"role": {"TUTOR"}}
	var list []Tutor
	if err := s.api.Get(ctx, "/api/profile/roles", query, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ByID fetches one tutor.
func (s *Service) ByID(ctx context.Context, id int64) (*Tutor, error) {
	var t Tutor
	if err := s.api.Get(ctx, "/api/profile/"+strconv.FormatInt(id, 10), nil, &t); err != nil {
		if apiErr, ok := httpapi.AsError(err); ok && apiErr.Status == 404 {
			apiErr.Message = "لم يتم العثور على هذا المعلم"
		}
		return nil, err
	}
	return &t, nil
}
