package sessions

import (
	"errors"

	"mutqin-client/internal/platform/httpapi"
)

var errInvalidEventUUID = errors.New("معرف الجلسة غير صحيح")

const (
	CodeBookingUnavailable httpapi.Code = "BOOKING_UNAVAILABLE"
	CodeSessionExists      httpapi.Code = "SESSION_EXISTS"
	CodeNoSchedulingURL    httpapi.Code = "NO_SCHEDULING_URL"
	CodeStudentResolution  httpapi.Code = "STUDENT_ID_RESOLUTION_FAILED"
	CodeSessionNotFound    httpapi.Code = "SESSION_NOT_FOUND"
	CodeAlreadyConfirmed   httpapi.Code = "ALREADY_CONFIRMED"
)

var statusOverrides = httpapi.Overrides{
	401: {Message: "غير مصرح لك بحجز الجلسات - يرجى تسجيل الدخول"},
	403: {Message: "ممنوع الوصول - تحقق من صلاحياتك"},
	404: {Code: CodeBookingUnavailable, Message: "خدمة الحجز غير متاحة حالياً"},
	409: {Code: CodeSessionExists, Message: "لديك جلسة محجوزة بالفعل"},
	500: {Message: "خطأ في الخادم الداخلي - يرجى المحاولة مرة أخرى"},
}

// confirmOverrides relabel the shared booking mapping for the
// confirmation endpoint, where 404 and 409 mean something different.
var confirmOverrides = map[int]struct {
	code    httpapi.Code
	message string
}{
	404: {CodeSessionNotFound, "لم يتم العثور على الجلسة أو المعرف غير صحيح"},
	409: {CodeAlreadyConfirmed, "تم تأكيد الجلسة مسبقاً"},
}

func applyConfirmOverrides(err error) error {
	apiErr, ok := httpapi.AsError(err)
	if !ok {
		return err
	}
	if ov, exists := confirmOverrides[apiErr.Status]; exists {
		apiErr.Code = ov.code
		apiErr.Message = ov.message
	}
	return err
}
