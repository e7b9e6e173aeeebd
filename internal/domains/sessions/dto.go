package sessions

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"mutqin-client/internal/validate"
)

type BookRequest struct {
	// StudentID may be zero: it is then resolved through the profile
	// search before booking.
	StudentID int64 `form:"studentId"`
	TutorID   int64 `form:"tutorId"`
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TutorID,
			validation.Required.Error("معرف المعلم مطلوب"),
		),
	)
}

type bookPayload struct {
	StudentID int64 `json:"studentId"`
	TutorID   int64 `json:"tutorId"`
}

// BookResponse carries the opaque scheduling URL the third-party service
// hosts; the client only ever redirects to it.
type BookResponse struct {
	SchedulingURL string `json:"scheduling_url"`
	Message       string `json:"message"`
}

type ConfirmRequest struct {
	EventUUID string `form:"eventUuid"`
	StudentID int64  `form:"studentId"`
	TutorID   int64  `form:"tutorId"`
	// EmailOrUsername resolves StudentID when it is missing.
	EmailOrUsername string `form:"emailOrUsername"`
}

func (r ConfirmRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EventUUID,
			validation.Required.Error("معرف الجلسة مطلوب"),
			validation.By(eventUUIDRule),
		),
		validation.Field(&r.TutorID,
			validation.Required.Error("معرف المعلم مطلوب"),
		),
	)
}

func eventUUIDRule(value interface{}) error {
	if s, _ := value.(string); s != "" && !validate.IsEventUUID(s) {
		return errInvalidEventUUID
	}
	return nil
}

// Record is one booked session as the dashboards list them.
type Record struct {
	SessionID       int64  `json:"sessionId"`
	SheikhUsername  string `json:"sheikhUsername"`
	StudentUsername string `json:"studentUsername"`
	Date            string `json:"date"`
	Status          string `json:"status"`
}
