package profile

import (
	"errors"

	"mutqin-client/internal/platform/httpapi"
)

var (
	errEmailFormat  = errors.New("صيغة البريد الإلكتروني غير صحيحة")
	errInvalidPhone = errors.New("رقم الهاتف غير صحيح")
)

const (
	CodeProfileNotFound httpapi.Code = "PROFILE_NOT_FOUND"
	CodeUserIDNotFound  httpapi.Code = "USER_ID_NOT_FOUND"
)

// DeleteConfirmationWord must be typed exactly before the destructive
// account-delete call is issued.
const DeleteConfirmationWord = "حذف"

var statusOverrides = httpapi.Overrides{
	400: {Message: "بيانات غير صحيحة. تحقق من المعلومات المدخلة"},
	403: {Message: "ليس لديك صلاحية لتعديل هذه البيانات"},
	404: {Code: CodeProfileNotFound, Message: "الملف الشخصي غير موجود"},
}
