package solar

import (
	"math"
	"strconv"
	"strings"
)

// ParseConsumption converts raw user input into a monthly consumption in kWh.
// A single comma is accepted as decimal separator ("450,5"). Only decimal
// notation is accepted: hexadecimal floats such as "0x1p4" are rejected along
// with empty, non-numeric, non-finite and non-positive values, all as an
// *InvalidInputError.
func ParseConsumption(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, newInvalidInputError("", "monthly consumption is required")
	}

	normalized := trimmed
	if strings.Count(normalized, ",") == 1 && !strings.Contains(normalized, ".") {
		normalized = strings.Replace(normalized, ",", ".", 1)
	}

	if isHexFloat(normalized) {
		return 0, newInvalidInputError(trimmed, "monthly consumption must be a decimal number")
	}

	kwh, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, newInvalidInputError(trimmed, "monthly consumption must be a number")
	}
	if math.IsNaN(kwh) || math.IsInf(kwh, 0) {
		return 0, newInvalidInputError(trimmed, "monthly consumption must be a finite number")
	}
	if kwh <= 0 {
		return 0, newInvalidInputError(trimmed, "monthly consumption must be greater than zero")
	}
	return kwh, nil
}

func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
