// ABOUTME: Declarative form validation built on go-playground/validator
// ABOUTME: Custom rules for the storefront's email and password policies

package schema

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// emailPattern is the storefront's historic local@domain check. It is
// looser than RFC 5322; kept as-is so client and server agree on what an
// email looks like.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var otpPattern = regexp.MustCompile(`^\d{6}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Field names in error maps come from the form tag so they match
	// the API payload names the views bind to.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "email_basic", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "otp6", func(fl validator.FieldLevel) bool {
		return otpPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "password_login", validLoginPassword)
	mustRegister(v, "password_signup", validSignupPassword)

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// validLoginPassword enforces the historic login policy: at least 6
// characters, letters and digits only, with at least one of each.
func validLoginPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 6 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) && r < 128:
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}

// signupSpecials is the special-character set the signup policy accepts.
const signupSpecials = "@$!%*?&"

// validSignupPassword enforces the current signup policy: at least 8
// characters with an uppercase letter, a lowercase letter, a digit, and
// a special character, drawn only from those classes.
func validSignupPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(signupSpecials, r):
			hasSpecial = true
		default:
			return false
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}

// Errors evaluates a form and returns a field → message map. An empty
// map means the form is submittable. Messages prefer the per-field
// wording from the messages table and fall back to a generic rule name.
func Errors(form any, messages map[string]string) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return map[string]string{}
	}

	out := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_form"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue // first failing rule per field wins
		}
		if msg, ok := messages[field+"."+fe.Tag()]; ok {
			out[field] = msg
		} else if msg, ok := messages[field]; ok {
			out[field] = msg
		} else {
			out[field] = "Invalid value"
		}
	}
	return out
}
