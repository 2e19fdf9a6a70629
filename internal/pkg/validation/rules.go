// Package validation registers the custom binding tags used by request DTOs.
package validation

import (
	"fmt"
	"regexp"
	"time"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// PasswordMinLength is the shortest accepted password.
const PasswordMinLength = 8

var yearMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidPassword requires PasswordMinLength characters with at least one letter and one digit.
func ValidPassword(pw string) bool {
	if len([]rune(pw)) < PasswordMinLength {
		return false
	}
	var letter, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}

// ParseYearMonth parses "YYYY-MM" into the half-open month range [start, end) in UTC.
func ParseYearMonth(s string) (start, end time.Time, err error) {
	if !yearMonthPattern.MatchString(s) {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	start, err = time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}

// Register adds the custom tags to v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return ValidPassword(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		return yearMonthPattern.MatchString(fl.Field().String())
	})
}

// RegisterWithGin registers the custom tags on gin's default validator.
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}
