package validator

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blognest-backend/internal/domain"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// Validator provides validation methods for domain inputs.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegistration validates account creation input.
func (v *Validator) ValidateRegistration(r *domain.Registration) error {
	return convert(validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.By(notBlank("username is required")),
		),
		validation.Field(&r.Email,
			validation.Required.Error("please enter a valid email"),
			is.EmailFormat.Error("please enter a valid email"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password must be at least 6 characters long"),
			validation.RuneLength(MinPasswordLength, 0).Error("password must be at least 6 characters long"),
		),
	))
}

// ValidateCredentials validates login input.
func (v *Validator) ValidateCredentials(c *domain.Credentials) error {
	return convert(validation.ValidateStruct(c,
		validation.Field(&c.Email,
			validation.Required.Error("please enter a valid email"),
			is.EmailFormat.Error("please enter a valid email"),
		),
		validation.Field(&c.Password,
			validation.Required.Error("password is required"),
		),
	))
}

// ValidateBlog validates a blog before it is created.
func (v *Validator) ValidateBlog(b *domain.Blog) error {
	return convert(validation.ValidateStruct(b,
		validation.Field(&b.Title,
			validation.By(notBlank("title is required")),
		),
		validation.Field(&b.Content,
			validation.By(notBlank("content is required")),
		),
		validation.Field(&b.Category,
			validation.Each(validation.By(notBlank("category labels cannot be empty"))),
		),
	))
}

// ValidateComment validates a comment before it is created.
func (v *Validator) ValidateComment(c *domain.Comment) error {
	return convert(validation.ValidateStruct(c,
		validation.Field(&c.Content,
			validation.By(notBlank("content is required")),
		),
	))
}

// notBlank rejects empty and whitespace-only strings.
func notBlank(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// convert turns ozzo validation errors into a domain validation error.
func convert(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return domain.NewValidation(err.Error(), nil)
	}

	fields := ConvertValidationErrors(ve)
	msg := "validation failed"
	for _, key := range []string{"username", "email", "password", "title", "content", "category"} {
		if reason, ok := fields[key]; ok {
			msg = reason
			break
		}
	}
	return domain.NewValidation(msg, fields)
}

// ConvertValidationErrors flattens ozzo validation errors into field reasons.
func ConvertValidationErrors(ve validation.Errors) map[string]string {
	fields := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		var nested validation.Errors
		if errors.As(fieldErr, &nested) {
			for _, inner := range nested {
				fields[field] = inner.Error()
				break
			}
			continue
		}
		fields[field] = fieldErr.Error()
	}
	return fields
}
