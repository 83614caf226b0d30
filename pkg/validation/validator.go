package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags for the domain enumerations.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// Domain enumerations
		v.RegisterAlias("bloodgroup", "oneof=A+ A- B+ B- AB+ AB- O+ O-")
		v.RegisterAlias("reqstatus", "oneof=pending inprogress done canceled")
		v.RegisterAlias("blogstatus", "oneof=draft published")
		v.RegisterAlias("userstatus", "oneof=active blocked")
		v.RegisterAlias("userrole", "oneof=donor volunteer admin")
	}
}

// ToDetails converts validation/binding errors into a map[field]message
// suitable for the API error detail.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	// Validation errors from validator.v10
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	// Fallback
	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "oneof", "bloodgroup", "reqstatus", "blogstatus", "userstatus", "userrole":
		return "must be one of " + strings.Join(strings.Fields(param), ", ")
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	case "gt":
		return "must be greater than " + param
	case "numeric":
		return "must be numeric"
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
