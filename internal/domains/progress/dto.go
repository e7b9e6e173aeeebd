package progress

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"mutqin-client/internal/validate"
)

// Item is one progress report entry for a student. Rates come back as
// fractional percentages and are kept exact for display.
type Item struct {
	Username          string          `json:"username"`
	Points            int             `json:"points"`
	MemorizationLevel string          `json:"memorizationLevel"`
	MemorizationRate  decimal.Decimal `json:"memorizationRate"`
	AttendanceRate    decimal.Decimal `json:"attendanceRate"`
}

// StudentSummary is one row of a tutor's student roster.
type StudentSummary struct {
	Username          string          `json:"username"`
	Email             string          `json:"email"`
	MemorizationLevel string          `json:"memorizationLevel"`
	Points            int             `json:"points"`
	MemorizationRate  decimal.Decimal `json:"memorizationRate"`
}

type UpdateLinkRequest struct {
	Username string `form:"username"`
	Link     string `form:"link"`
}

func (r UpdateLinkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("اسم المستخدم مطلوب"),
		),
		validation.Field(&r.Link,
			validation.Required.Error("رابط الجلسات مطلوب"),
			validation.By(calendlyRule),
		),
	)
}

func calendlyRule(value interface{}) error {
	if s, _ := value.(string); s != "" && !validate.IsCalendlyLink(s) {
		return errInvalidLink
	}
	return nil
}

type updateLinkPayload struct {
	Link string `json:"link"`
}
