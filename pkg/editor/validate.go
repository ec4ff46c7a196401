package editor

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidDraft is returned by Save while a required field is blank
	ErrInvalidDraft = errors.New("editor: draft is missing a required field")

	// ErrAttendeeIndex is returned for an attendee position outside the draft's list
	ErrAttendeeIndex = errors.New("editor: attendee index out of range")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// NotBlank is the entry validator used by form fields for required values
func NotBlank(field string) func(string) error {
	return func(s string) error {
		if err := validate.Var(s, "notblank"); err != nil {
			return errors.New(field + " is required")
		}
		return nil
	}
}
