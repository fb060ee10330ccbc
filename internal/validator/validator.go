// Package validator registers custom binding rules and renders validation
// failures as client-facing messages.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"compliance-cms/internal/models"
)

// slugRegex matches valid slugs: lowercase alphanumeric with hyphens, no leading/trailing/consecutive hyphens
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// validateSlug validates that a string is a valid slug
func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

// emailCheck runs the stock email rule on the trimmed value.
var emailCheck = validator.New()

// validateTrimmedEmail accepts addresses with surrounding whitespace; services
// trim and lowercase them before storing.
func validateTrimmedEmail(fl validator.FieldLevel) bool {
	return emailCheck.Var(strings.TrimSpace(fl.Field().String()), "email") == nil
}

func validatePageCategory(fl validator.FieldLevel) bool {
	return models.IsPageCategory(fl.Field().String())
}

// fieldName reports fields by their json name, falling back to the form name.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("slug", validateSlug)
		_ = v.RegisterValidation("pagecategory", validatePageCategory)
		_ = v.RegisterValidation("trimmedemail", validateTrimmedEmail)
	}
}

// IsValidSlug reports whether s is a well-formed slug.
func IsValidSlug(s string) bool {
	return slugRegex.MatchString(s)
}

// Messages turns a binding error into one message per failed field.
// Errors that are not field validations yield a single generic message.
func Messages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"invalid request body"}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return msgs
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email", "trimmedemail":
		return field + " must be a valid email address"
	case "slug":
		return field + " must contain only lowercase letters, numbers and single hyphens"
	case "pagecategory":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(models.PageCategories, ", "))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}
