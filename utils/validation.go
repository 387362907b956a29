// utils/validation.go
package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest password accepted at sign-up and reset.
const MinPasswordLength = 6

var (
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	validate   = validator.New()
)

// ValidationError is a form error shown next to the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 2-15 digits
	return phoneRegex.MatchString(cleaned)
}

func ValidateEmail(email string) error {
	if validate.Var(strings.TrimSpace(email), "required,email") != nil {
		return &ValidationError{Field: "email", Message: "Please enter a valid email address"}
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return &ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("Password must be at least %d characters", MinPasswordLength),
		}
	}
	return nil
}

// ValidateCredentials checks email first, then password, returning the first failure.
func ValidateCredentials(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePassword(password)
}
