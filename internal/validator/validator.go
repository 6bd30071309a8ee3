package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Nigerian mobile numbers: +234 or 0 prefix, then 70/80/81/90/91 ranges.
var ngPhoneRe = regexp.MustCompile(`^(\+234|0)[789][01]\d{8}$`)

// Validator wraps go-playground/validator with the service's custom rules.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := &Validator{validate: validator.New()}
	v.registerRules()
	return v
}

// Validate validates any request struct and returns nil when it passes.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	if err := v.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

func (v *Validator) registerRules() {
	v.validate.RegisterValidation("ng_phone", func(fl validator.FieldLevel) bool {
		phone := strings.ReplaceAll(fl.Field().String(), " ", "")
		return ngPhoneRe.MatchString(phone)
	})

	// Course fees are naira amounts; zero is allowed for free courses.
	v.validate.RegisterValidation("course_fee", func(fl validator.FieldLevel) bool {
		return fl.Field().Float() >= 0
	})

	v.validate.RegisterValidation("rating_range", func(fl validator.FieldLevel) bool {
		r := fl.Field().Int()
		return r >= 1 && r <= 5
	})
}

// ValidationError describes a single failed rule.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(msgs, "; ")
}

// ToValidationErrors converts validator.ValidationErrors into the
// service's error type.
func ToValidationErrors(err error) ValidationErrors {
	var out ValidationErrors
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			out = append(out, ValidationError{
				Field:   strings.ToLower(fe.Field()),
				Message: messageForTag(fe),
				Value:   fe.Value(),
				Rule:    fe.Tag(),
			})
		}
		return out
	}
	return ValidationErrors{{Field: "request", Message: err.Error(), Rule: "invalid"}}
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "ng_phone":
		return "must be a valid Nigerian phone number"
	case "course_fee":
		return "must be zero or a positive amount"
	case "rating_range":
		return "must be between 1 and 5"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
