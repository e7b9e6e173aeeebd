package auth

import (
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"mutqin-client/internal/guard"
	"mutqin-client/internal/validate"
)

// ========================================
// AUTH DTOs
// ========================================

type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("البريد الإلكتروني مطلوب"),
			validation.By(emailRule),
		),
		validation.Field(&r.Password,
			validation.Required.Error("كلمة المرور مطلوبة"),
		),
	)
}

type SignupRequest struct {
	Username          string `form:"username"`
	Email             string `form:"email"`
	Phone             string `form:"phone"`
	Password          string `form:"password"`
	ConfirmPassword   string `form:"confirmPassword"`
	Role              string `form:"role"`
	MemorizationLevel string `form:"memorizationLevel"`
}

func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("اسم المستخدم مطلوب"),
			validation.Length(3, 50).Error("اسم المستخدم يجب أن يكون بين 3 و 50 حرفاً"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("البريد الإلكتروني مطلوب"),
			validation.By(emailRule),
		),
		validation.Field(&r.Phone,
			validation.Required.Error("رقم الهاتف مطلوب"),
			validation.By(phoneRule),
		),
		validation.Field(&r.Password,
			validation.Required.Error("كلمة المرور مطلوبة"),
			validation.By(passwordRule),
		),
		validation.Field(&r.ConfirmPassword,
			validation.Required.Error("تأكيد كلمة المرور مطلوب"),
			validation.In(r.Password).Error("كلمتا المرور غير متطابقتين"),
		),
		validation.Field(&r.Role,
			validation.Required.Error("نوع الحساب مطلوب"),
			validation.By(roleRule),
		),
		validation.Field(&r.MemorizationLevel,
			// Only students pick a memorization level.
			validation.When(guard.Normalize(r.Role) == guard.RoleStudent,
				validation.Required.Error("يرجى اختيار مستوى الحفظ"),
			),
		),
	)
}

// signupPayload is the wire shape the backend expects: uppercased tags,
// phone as a bare integer, memorization level only for students.
type signupPayload struct {
	Username          string `json:"username"`
	Email             string `json:"email"`
	Phone             int64  `json:"phone"`
	Password          string `json:"password"`
	Role              string `json:"role"`
	MemorizationLevel string `json:"memorizationLevel,omitempty"`
}

func (r SignupRequest) payload() (signupPayload, error) {
	phone, err := strconv.ParseInt(validate.DigitsOnly(r.Phone), 10, 64)
	if err != nil {
		return signupPayload{}, errInvalidPhone
	}

	p := signupPayload{
		Username: r.Username,
		Email:    r.Email,
		Phone:    phone,
		Password: r.Password,
		Role:     strings.ToUpper(r.Role),
	}
	if guard.Normalize(r.Role) == guard.RoleStudent {
		p.MemorizationLevel = strings.ToUpper(r.MemorizationLevel)
	}
	return p, nil
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserDTO is the user blob the auth endpoints return alongside the token.
type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
	Message string  `json:"message"`
}

// ========================================
// FIELD RULES
// ========================================

func emailRule(value interface{}) error {
	s, _ := value.(string)
	if s != "" && !validate.IsEmail(s) {
		return errEmailFormat
	}
	return nil
}

func phoneRule(value interface{}) error {
	s, _ := value.(string)
	if s != "" && !validate.IsPhone(s) {
		return errInvalidPhone
	}
	return nil
}

func passwordRule(value interface{}) error {
	s, _ := value.(string)
	if s != "" && !validate.IsPassword(s) {
		return errWeakPassword
	}
	return nil
}

func roleRule(value interface{}) error {
	switch guard.Normalize(value.(string)) {
	case guard.RoleStudent, guard.RoleTutor, guard.RoleParent:
		return nil
	}
	return errInvalidRole
}
