package httpapi

import (
	"errors"
	"fmt"
)

// Code is the stable machine-readable outcome of a backend call.
// Callers branch on Code; Message is presentation only.
type Code string

const (
	CodeValidation       Code = "VALIDATION_ERROR"        // local validation, never reached the network
	CodeInvalidData      Code = "INVALID_DATA"            // 400
	CodeUnauthorized     Code = "UNAUTHORIZED"            // 401
	CodeForbidden        Code = "FORBIDDEN"               // 403
	CodeNotFound         Code = "NOT_FOUND"               // 404
	CodeConflict         Code = "CONFLICT"                // 409
	CodeServerValidation Code = "SERVER_VALIDATION_ERROR" // 422
	CodeRateLimited      Code = "TOO_MANY_ATTEMPTS"       // 429
	CodeServer           Code = "SERVER_ERROR"            // 5xx
	CodeNetwork          Code = "NETWORK_ERROR"           // no response at all
	CodeUnknown          Code = "UNKNOWN_ERROR"
)

// ErrSessionExpired is wrapped into every 401 error. The transport never
// navigates; the top-level web handler listens for this sentinel, clears
// the session and redirects to the login route.
var ErrSessionExpired = errors.New("session expired")

// Error is the uniform service-call failure. No raw transport or parse
// error escapes to callers without being converted into one of these.
type Error struct {
	Code    Code
	Status  int    // HTTP status, 0 when no response was received
	Message string // localized, safe to render
	Detail  string // raw server message, logged but never shown
	cause   error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (status %d): %s", e.Code, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s (status %d)", e.Code, e.Status)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Override customizes the mapping of one HTTP status for one resource area,
// e.g. 401 on login is invalid credentials rather than an expired session.
type Override struct {
	Code    Code
	Message string
}

// Overrides is a per-resource status override table.
type Overrides map[int]Override

// GetResultMessage returns the Arabic user-facing message for a code.
func GetResultMessage(code Code) string {
	if msg, exists := defaultMessages[code]; exists {
		return msg
	}
	return defaultMessages[CodeUnknown]
}

var defaultMessages = map[Code]string{
	CodeInvalidData:      "طلب غير صحيح - تحقق من البيانات المرسلة",
	CodeUnauthorized:     "انتهت صلاحية جلسة العمل. يرجى تسجيل الدخول مرة أخرى",
	CodeForbidden:        "ليس لديك صلاحية للوصول لهذه البيانات",
	CodeNotFound:         "المورد المطلوب غير موجود",
	CodeConflict:         "تعارض في البيانات المرسلة",
	CodeServerValidation: "البيانات المدخلة غير صالحة",
	CodeRateLimited:      "لقد تجاوزت عدد المحاولات المسموحة. حاول مرة أخرى لاحقاً",
	CodeServer:           "خطأ في الخادم. حاول مرة أخرى لاحقاً",
	CodeNetwork:          "لا يمكن الاتصال بالخادم. تحقق من اتصالك بالإنترنت",
	CodeUnknown:          "حدث خطأ غير متوقع",
}

var statusCodes = map[int]Code{
	400: CodeInvalidData,
	401: CodeUnauthorized,
	403: CodeForbidden,
	404: CodeNotFound,
	409: CodeConflict,
	422: CodeServerValidation,
	429: CodeRateLimited,
}

// MapStatus converts a non-2xx status into a taxonomy error. The override
// table wins over the shared mapping; 401 always carries ErrSessionExpired
// no matter how a resource relabels it.
func MapStatus(status int, detail string, overrides Overrides) *Error {
	code := CodeUnknown
	if c, exists := statusCodes[status]; exists {
		code = c
	} else if status >= 500 {
		code = CodeServer
	}
	message := GetResultMessage(code)

	if ov, exists := overrides[status]; exists {
		if ov.Code != "" {
			code = ov.Code
		}
		if ov.Message != "" {
			message = ov.Message
		}
	}

	e := &Error{
		Code:    code,
		Status:  status,
		Message: message,
		Detail:  detail,
	}
	if status == 401 {
		e.cause = ErrSessionExpired
	}
	return e
}

// NetworkError wraps a transport failure: the request never produced a
// response, so there is no status to map.
func NetworkError(cause error) *Error {
	return &Error{
		Code:    CodeNetwork,
		Message: GetResultMessage(CodeNetwork),
		Detail:  cause.Error(),
		cause:   cause,
	}
}

// ValidationError is a local fast-fail: produced before any network call.
func ValidationError(message string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: message,
	}
}

// Wrap relabels a failure with a caller-specific code and message while
// keeping the original error (and any ErrSessionExpired inside it) on the
// unwrap chain.
func Wrap(code Code, message string, cause error) *Error {
	e := &Error{
		Code:    code,
		Message: message,
		cause:   cause,
	}
	if cause != nil {
		e.Detail = cause.Error()
		var inner *Error
		if errors.As(cause, &inner) {
			e.Status = inner.Status
		}
	}
	return e
}

// AsError extracts the taxonomy error from any error returned by a service
// call. Every failure path in this package produces one, so ok is false
// only for foreign errors.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
