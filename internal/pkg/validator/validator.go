package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Campaign status validation
	validate.RegisterValidation("campaign_status", func(fl validator.FieldLevel) bool {
		status := fl.Field().String()
		validStatuses := []string{"draft", "active", "paused", "completed", "cancelled"}
		for _, s := range validStatuses {
			if status == s {
				return true
			}
		}
		return false
	})

	// Advertisement media type validation
	validate.RegisterValidation("media_type", func(fl validator.FieldLevel) bool {
		mediaType := fl.Field().String()
		return mediaType == "image" || mediaType == "video"
	})

	// Calendar date in YYYY-MM-DD form
	validate.RegisterValidation("datestr", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "gte":
			errors[field] = "Must be greater than or equal to " + err.Param()
		case "max":
			errors[field] = "Must be at most " + err.Param() + " characters"
		case "url":
			errors[field] = "Must be a valid URL"
		case "campaign_status":
			errors[field] = "Must be one of: draft, active, paused, completed, cancelled"
		case "media_type":
			errors[field] = "Must be one of: image, video"
		case "datestr":
			errors[field] = "Must be a date in YYYY-MM-DD format"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}
