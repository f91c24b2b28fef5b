package response

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldMessages maps a request struct field name to the message shown when
// its validation fails.
type FieldMessages map[string]Message

// ValidationMessage picks the message for the first failed field of a gin
// binding error. Malformed JSON and unknown fields fall back to InvalidBody.
func ValidationMessage(err error, fields FieldMessages) Message {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, fe := range errs {
			if msg, ok := fields[fe.StructField()]; ok {
				return msg
			}
		}
	}
	return InvalidBody
}
