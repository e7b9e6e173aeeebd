package profile

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"mutqin-client/internal/validate"
)

// Profile is the backend's user record. It is ephemeral on this side:
// fetched per view, never cached locally.
type Profile struct {
	ID                int64  `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Role              string `json:"role"`
	MemorizationLevel string `json:"memorizationLevel"`
	Points            int    `json:"points"`
	Age               int    `json:"age"`
}

type UpdateRequest struct {
	Username          string `form:"username" json:"username,omitempty"`
	Email             string `form:"email" json:"email,omitempty"`
	Phone             string `form:"phone" json:"phone,omitempty"`
	Age               int    `form:"age" json:"age,omitempty"`
	MemorizationLevel string `form:"memorizationLevel" json:"memorizationLevel,omitempty"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.When(r.Username != "",
				validation.Length(3, 50).Error("اسم المستخدم يجب أن يكون بين 3 و 50 حرفاً"),
			),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != "", validation.By(emailRule)),
		),
		validation.Field(&r.Phone,
			validation.When(r.Phone != "", validation.By(phoneRule)),
		),
		validation.Field(&r.Age,
			validation.Min(0).Error("العمر غير صحيح"),
			validation.Max(120).Error("العمر غير صحيح"),
		),
	)
}

func emailRule(value interface{}) error {
	if s, _ := value.(string); s != "" && !validate.IsEmail(s) {
		return errEmailFormat
	}
	return nil
}

func phoneRule(value interface{}) error {
	if s, _ := value.(string); s != "" && !validate.IsPhone(s) {
		return errInvalidPhone
	}
	return nil
}
