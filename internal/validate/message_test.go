package validate

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
)

func TestFirstMessage(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "", FirstMessage(nil))
	})

	t.Run("plain error passes through", func(t *testing.T) {
		assert.Equal(t, "boom", FirstMessage(errors.New("boom")))
	})

	t.Run("picks first field by sorted key", func(t *testing.T) {
		err := validation.Errors{
			"phone": errors.New("رقم الهاتف غير صحيح"),
			"email": errors.New("صيغة البريد الإلكتروني غير صحيحة"),
		}
		assert.Equal(t, "صيغة البريد الإلكتروني غير صحيحة", FirstMessage(err))
	})

	t.Run("nested errors collapse recursively", func(t *testing.T) {
		err := validation.Errors{
			"profile": validation.Errors{
				"age": errors.New("العمر غير صحيح"),
			},
		}
		assert.Equal(t, "العمر غير صحيح", FirstMessage(err))
	})
}
