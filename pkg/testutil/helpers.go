// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/solar-sizing/pkg/output"
	"github.com/iwvelando/solar-sizing/pkg/solar"
)

// FindInfoLine finds an information line by label.
// Returns a pointer to the line if found, nil otherwise.
func FindInfoLine(lines []output.InfoLine, label string) *output.InfoLine {
	for i := range lines {
		if lines[i].Label == label {
			return &lines[i]
		}
	}
	return nil
}

// MustCompute sizes a system for kwh and fails the test on error.
func MustCompute(tb testing.TB, kwh float64) solar.SizingResult {
	tb.Helper()
	result, err := solar.Compute(kwh)
	if err != nil {
		tb.Fatalf("Compute(%v) error = %v", kwh, err)
	}
	return result
}
