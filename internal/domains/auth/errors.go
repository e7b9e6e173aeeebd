package auth

import (
	"errors"
	"strings"

	"mutqin-client/internal/platform/httpapi"
)

// Local validation errors (never reach the network)
var (
	errEmailFormat  = errors.New("صيغة البريد الإلكتروني غير صحيحة")
	errInvalidPhone = errors.New("رقم الهاتف غير صحيح")
	errWeakPassword = errors.New("كلمة المرور يجب أن تحتوي على 8 أحرف على الأقل مع حرف كبير وحرف صغير ورقم ورمز")
	errInvalidRole  = errors.New("نوع الحساب غير صحيح")
)

// Resource-specific outcome codes
const (
	CodeInvalidCredentials httpapi.Code = "INVALID_CREDENTIALS"
	CodeUserNotFound       httpapi.Code = "USER_NOT_FOUND"
	CodeUserExists         httpapi.Code = "USER_EXISTS"
	CodeOAuthCancelled     httpapi.Code = "OAUTH_CANCELLED"
	CodeOAuthMissingParams httpapi.Code = "OAUTH_MISSING_PARAMS"
)

// Status overrides for the auth resource area. 401 on this area means the
// credentials were wrong, not that a session expired.
var statusOverrides = httpapi.Overrides{
	400: {Code: httpapi.CodeInvalidData, Message: "بيانات غير صحيحة. تحقق من المعلومات المدخلة"},
	401: {Code: CodeInvalidCredentials, Message: "البريد الإلكتروني أو كلمة المرور غير صحيحة"},
	404: {Code: CodeUserNotFound, Message: "المستخدم غير موجود"},
	409: {Code: CodeUserExists, Message: "البريد الإلكتروني أو اسم المستخدم مستخدم مسبقاً"},
	500: {Message: "خطأ داخلي في الخادم. يرجى المحاولة مرة أخرى لاحقاً"},
}

// serverMessageTranslations maps known backend English substrings to
// localized text; matching is case-insensitive and partial.
var serverMessageTranslations = map[string]string{
	"username already exists": "اسم المستخدم مستخدم مسبقاً",
	"email already exists":    "البريد الإلكتروني مستخدم مسبقاً",
	"user already exists":     "المستخدم موجود مسبقاً",
}

// translateServerMessage upgrades an auth error's display message when the
// backend detail matches a known phrase. Codes never change here.
func translateServerMessage(err error) error {
	apiErr, ok := httpapi.AsError(err)
	if !ok || apiErr.Detail == "" {
		return err
	}

	detail := strings.ToLower(apiErr.Detail)
	for phrase, arabic := range serverMessageTranslations {
		if strings.Contains(detail, phrase) {
			apiErr.Message = arabic
			break
		}
	}
	return err
}
