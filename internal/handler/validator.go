package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/ItemRandomizer_Go/internal/randomizer"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

var scenarioNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// GetValidator returns the shared validator, registering custom tags on first use
func GetValidator() *Validator {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("scenario", validateScenario)
		_ = v.RegisterValidation("strategy", validateStrategy)
		validate = &Validator{validate: v}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validator errors into field messages without
// leaking struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = ValidationMsgFormat
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = ValidationMsgRequired
		case "scenario":
			errs[field] = ValidationMsgScenario
		case "strategy":
			errs[field] = fmt.Sprintf("%s %q", ValidationMsgStrategy, e.Value())
		case "max":
			errs[field] = fmt.Sprintf(ValidationMsgMax, e.Param())
		default:
			errs[field] = ValidationMsgInvalid
		}
	}

	return errs
}

// Scenario names double as pool file names
func validateScenario(fl validator.FieldLevel) bool {
	return scenarioNamePattern.MatchString(fl.Field().String())
}

func validateStrategy(fl validator.FieldLevel) bool {
	return randomizer.IsKind(fl.Field().String())
}
