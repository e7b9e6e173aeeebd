package validate

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FirstMessage collapses an ozzo validation error into a single
// user-facing line: the message of the first failing field, without the
// field prefix. Field order is made deterministic by sorting keys.
func FirstMessage(err error) string {
	if err == nil {
		return ""
	}

	errs, ok := err.(validation.Errors)
	if !ok {
		return err.Error()
	}

	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if fieldErr := errs[k]; fieldErr != nil {
			// Nested struct errors collapse recursively.
			return FirstMessage(fieldErr)
		}
	}
	return err.Error()
}
