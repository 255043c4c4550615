package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// GetValidator returns the shared validator with the fishing tags registered:
// season, weather, water and key.
func GetValidator() *Validator {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("season", parses(domain.ParseSeasons))
		_ = v.RegisterValidation("weather", parses(domain.ParseWeathers))
		_ = v.RegisterValidation("water", parses(domain.ParseWaterTypes))
		_ = v.RegisterValidation("key", validateKey)
		validate = &Validator{validate: v}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// parses adapts a domain name parser into a validation func. Empty passes;
// "required" decides whether empty is allowed.
func parses[T any](parse func(...string) (T, error)) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := parse(s)
		return err == nil
	}
}

func validateKey(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := domain.ParseKey(s)
	return err == nil
}

// FormatValidationError formats validation errors into a field -> message map
// without leaking struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "season":
			errs[field] = "Unknown season"
		case "weather":
			errs[field] = "Unknown weather"
		case "water":
			errs[field] = "Unknown water type"
		case "key":
			errs[field] = "Invalid item key"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min", "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
