// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/solar-sizing/pkg/constants"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	for _, supported := range constants.OutputFormats {
		if format == supported {
			return nil
		}
	}
	return fmt.Errorf("expected output format of %s, got %s",
		strings.Join(constants.OutputFormats, ", "), format)
}

// IsBinaryFormat reports whether the format produces a binary report.
func IsBinaryFormat(format string) bool {
	return format == constants.OutputFormatXLSX || format == constants.OutputFormatPDF
}

// ValidateLocale checks that the locale is a well-formed BCP 47 tag.
func ValidateLocale(locale string) error {
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return nil
}

// ValidateCurrency checks that the code is a recognized ISO 4217 currency.
func ValidateCurrency(code string) error {
	if _, err := currency.ParseISO(code); err != nil {
		return fmt.Errorf("invalid currency %q: %w", code, err)
	}
	return nil
}
