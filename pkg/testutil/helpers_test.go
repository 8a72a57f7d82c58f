package testutil

import (
	"testing"

	"github.com/iwvelando/solar-sizing/pkg/output"
)

func TestFindInfoLine(t *testing.T) {
	lines := []output.InfoLine{
		{Label: "Panel power", Value: "550 W"},
		{Label: "kWh cost", Value: "$926 COP"},
		{Label: "Safety factor", Value: "25%"},
	}

	tests := []struct {
		name          string
		label         string
		expectFound   bool
		expectedValue string
	}{
		{"Find panel power", "Panel power", true, "550 W"},
		{"Find safety factor", "Safety factor", true, "25%"},
		{"Missing label", "Panel area", false, ""},
		{"Case sensitive", "panel power", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := FindInfoLine(lines, tt.label)
			if !tt.expectFound {
				if line != nil {
					t.Errorf("Expected no line for %q, got %+v", tt.label, *line)
				}
				return
			}
			if line == nil {
				t.Fatalf("Expected to find %q", tt.label)
			}
			if line.Value != tt.expectedValue {
				t.Errorf("Expected value %q, got %q", tt.expectedValue, line.Value)
			}
		})
	}
}

func TestFindInfoLineReturnsElement(t *testing.T) {
	lines := []output.InfoLine{{Label: "Panel power", Value: "550 W"}}

	line := FindInfoLine(lines, "Panel power")
	line.Value = "600 W"
	if lines[0].Value != "600 W" {
		t.Errorf("Expected pointer into slice, slice still holds %q", lines[0].Value)
	}

	if FindInfoLine(nil, "Panel power") != nil {
		t.Error("Expected nil for empty slice")
	}
}

func TestMustCompute(t *testing.T) {
	result := MustCompute(t, 500)
	if result.PanelCount != 8 {
		t.Errorf("Expected 8 panels, got %d", result.PanelCount)
	}
}
