package httpapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantCode   Code
		wantExpiry bool
	}{
		{"bad request", 400, CodeInvalidData, false},
		{"unauthorized", 401, CodeUnauthorized, true},
		{"forbidden", 403, CodeForbidden, false},
		{"not found", 404, CodeNotFound, false},
		{"conflict", 409, CodeConflict, false},
		{"unprocessable", 422, CodeServerValidation, false},
		{"rate limited", 429, CodeRateLimited, false},
		{"server error", 500, CodeServer, false},
		{"bad gateway", 502, CodeServer, false},
		{"teapot maps to unknown", 418, CodeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapStatus(tt.status, "detail", nil)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.status, err.Status)
			assert.Equal(t, GetResultMessage(tt.wantCode), err.Message)
			assert.Equal(t, tt.wantExpiry, errors.Is(err, ErrSessionExpired))
		})
	}
}

func TestMapStatusOverrides(t *testing.T) {
	overrides := Overrides{
		401: {Code: "INVALID_CREDENTIALS", Message: "البريد الإلكتروني أو كلمة المرور غير صحيحة"},
		409: {Message: "لديك جلسة محجوزة بالفعل"},
	}

	t.Run("override replaces code and message", func(t *testing.T) {
		err := MapStatus(401, "bad credentials", overrides)
		assert.Equal(t, Code("INVALID_CREDENTIALS"), err.Code)
		assert.Equal(t, "البريد الإلكتروني أو كلمة المرور غير صحيحة", err.Message)
	})

	t.Run("401 keeps the expiry sentinel even when relabeled", func(t *testing.T) {
		err := MapStatus(401, "", overrides)
		assert.True(t, errors.Is(err, ErrSessionExpired))
	})

	t.Run("message-only override keeps the shared code", func(t *testing.T) {
		err := MapStatus(409, "", overrides)
		assert.Equal(t, CodeConflict, err.Code)
		assert.Equal(t, "لديك جلسة محجوزة بالفعل", err.Message)
	})
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NetworkError(cause)

	assert.Equal(t, CodeNetwork, err.Code)
	assert.Equal(t, 0, err.Status)
	assert.Equal(t, GetResultMessage(CodeNetwork), err.Message)
	assert.True(t, errors.Is(err, cause))
}

func TestValidationError(t *testing.T) {
	err := ValidationError("صيغة البريد الإلكتروني غير صحيحة")
	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, "صيغة البريد الإلكتروني غير صحيحة", err.Message)
	assert.False(t, errors.Is(err, ErrSessionExpired))
}

func TestWrapKeepsUnwrapChain(t *testing.T) {
	inner := MapStatus(401, "token expired", nil)
	wrapped := Wrap("STUDENT_ID_RESOLUTION_FAILED", "تعذر تحديد هوية الطالب", inner)

	assert.Equal(t, Code("STUDENT_ID_RESOLUTION_FAILED"), wrapped.Code)
	assert.Equal(t, 401, wrapped.Status)
	assert.True(t, errors.Is(wrapped, ErrSessionExpired))
}

func TestAsError(t *testing.T) {
	apiErr := MapStatus(404, "", nil)

	extracted, ok := AsError(apiErr)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, extracted.Code)

	_, ok = AsError(errors.New("plain"))
	assert.False(t, ok)
}
