// Package validator registers custom validation rules on gin's binding
// engine so request structs can use them in binding tags.
package validator

import (
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Custom validation tags
const (
	TagPassword = "password" // Password (min 8 chars, at least 1 letter and 1 number)
)

// Register installs the custom rules on gin's default binding validator.
// Call once during startup, before any request binding happens.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation(TagPassword, validatePassword)
}

// validatePassword validates basic password requirements.
// At least 8 characters, containing at least 1 letter and 1 number.
func validatePassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let 'required' handle empty values
	}

	if len(value) < 8 {
		return false
	}

	hasLetter := false
	hasNumber := false

	for _, char := range value {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasNumber = true
		}
		if hasLetter && hasNumber {
			return true
		}
	}

	return hasLetter && hasNumber
}
