package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{name: "Valid pretty format", format: "pretty"},
		{name: "Valid csv format", format: "csv"},
		{name: "Valid json format", format: "json"},
		{name: "Valid xlsx format", format: "xlsx"},
		{name: "Valid pdf format", format: "pdf"},
		{name: "Empty format", format: "", expectErr: true},
		{name: "Case sensitive - uppercase", format: "PRETTY", expectErr: true},
		{name: "Case sensitive - JSON uppercase", format: "JSON", expectErr: true},
		{name: "Leading/trailing spaces", format: " pretty ", expectErr: true},
		{name: "Similar but incorrect format", format: "prettyprint", expectErr: true},
		{name: "XML format not supported", format: "xml", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)

			if tt.expectErr {
				if err == nil {
					t.Errorf("ValidateOutputFormat(%s) expected error but got none", tt.format)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateOutputFormat(%s) unexpected error = %v", tt.format, err)
				}
			}
		})
	}
}

func TestValidateOutputFormatErrorMessage(t *testing.T) {
	err := ValidateOutputFormat("yaml")
	if err == nil {
		t.Fatal("expected error for yaml format")
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("error should mention the rejected format, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "pretty, csv, json, xlsx, pdf") {
		t.Errorf("error should list supported formats, got %q", err.Error())
	}
}

func TestIsBinaryFormat(t *testing.T) {
	tests := map[string]bool{
		"pretty": false,
		"csv":    false,
		"json":   false,
		"xlsx":   true,
		"pdf":    true,
	}
	for format, expected := range tests {
		if got := IsBinaryFormat(format); got != expected {
			t.Errorf("IsBinaryFormat(%s) = %v, expected %v", format, got, expected)
		}
	}
}

func TestValidateLocale(t *testing.T) {
	for _, locale := range []string{"es-CO", "es", "en-US", "pt-BR"} {
		if err := ValidateLocale(locale); err != nil {
			t.Errorf("ValidateLocale(%s) unexpected error = %v", locale, err)
		}
	}
	for _, locale := range []string{"not a locale", "es_CO_xx!"} {
		if err := ValidateLocale(locale); err == nil {
			t.Errorf("ValidateLocale(%s) expected error but got none", locale)
		}
	}
}

func TestValidateCurrency(t *testing.T) {
	tests := []struct {
		code      string
		expectErr bool
	}{
		{code: "COP"},
		{code: "USD"},
		{code: "eur"},
		{code: "", expectErr: true},
		{code: "US", expectErr: true},
		{code: "DOLLARS", expectErr: true},
		{code: "ZZZ", expectErr: true},
	}

	for _, tt := range tests {
		err := ValidateCurrency(tt.code)
		if tt.expectErr && err == nil {
			t.Errorf("ValidateCurrency(%q) expected error but got none", tt.code)
		}
		if !tt.expectErr && err != nil {
			t.Errorf("ValidateCurrency(%q) unexpected error = %v", tt.code, err)
		}
	}
}
