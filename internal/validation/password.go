package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// PasswordCharClasses reports whether the password carries all three required
// character classes: lowercase, uppercase and non-alphanumeric.
func PasswordCharClasses(fl validator.FieldLevel) bool {
	var lower, upper, special bool

	for _, r := range fl.Field().String() {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			// digits satisfy no class on their own
		default:
			special = true
		}
	}

	return lower && upper && special
}

// Register installs the custom rules on gin's binding validator. Call once at
// startup before any request binding happens.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("passwordcc", PasswordCharClasses)
}
