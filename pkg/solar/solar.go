// Package solar sizes a photovoltaic installation from a household's monthly
// energy consumption and estimates its savings, cost and payback period.
package solar

import (
	"fmt"
	"math"
)

// Fixed sizing parameters. Currency amounts are in Colombian pesos (COP).
const (
	// PanelPowerW is the rated power of a single panel in Watts.
	PanelPowerW = 550.0

	// CostPerKWh is the grid price of one kWh.
	CostPerKWh = 926.0

	// InstallCostPerPanel is the installed cost of one panel.
	InstallCostPerPanel = 2100000.0

	// DailySunHours is the number of effective peak sun hours per day.
	DailySunHours = 5.0

	// DaysPerMonth is the month length used to average consumption.
	DaysPerMonth = 30.0

	// PanelAreaM2 is the roof footprint of a single panel in square meters.
	PanelAreaM2 = 2.2

	// SafetyFactor oversizes the nominal power demand.
	SafetyFactor = 1.25

	// MonthsPerYear converts monthly savings into annual savings.
	MonthsPerYear = 12

	// MaxPanelCount is the largest installation Compute will size. It keeps
	// every amount within int64 so formatted output stays exact.
	MaxPanelCount = 1e12

	wattsPerKilowatt = 1000.0
)

// SizingResult holds the sizing and financial estimates for one consumption
// figure. Values are full precision; rounding is left to the caller.
type SizingResult struct {
	MonthlyConsumptionKWh float64 `json:"monthlyConsumptionKWh"`
	SystemPowerKW         float64 `json:"systemPowerKW"`
	PanelCount            int     `json:"panelCount"`
	InstalledPowerKW      float64 `json:"installedPowerKW"`
	MonthlySavings        float64 `json:"monthlySavings"`
	AnnualSavings         float64 `json:"annualSavings"`
	InstallationCost      float64 `json:"installationCost"`
	PaybackYears          float64 `json:"paybackYears"`
	TotalAreaM2           float64 `json:"totalAreaM2"`
}

// Compute derives the installation size and financial estimates for the given
// monthly consumption in kWh. It returns an *InvalidInputError when the value
// is not a finite number greater than zero, or when it is too small or too
// large to size (more than MaxPanelCount panels).
func Compute(monthlyConsumptionKWh float64) (SizingResult, error) {
	if err := checkConsumption(monthlyConsumptionKWh); err != nil {
		return SizingResult{}, err
	}

	systemPowerKW := (monthlyConsumptionKWh / (DailySunHours * DaysPerMonth)) * SafetyFactor
	panelRatio := systemPowerKW * wattsPerKilowatt / PanelPowerW
	if err := checkPanelRatio(monthlyConsumptionKWh, panelRatio); err != nil {
		return SizingResult{}, err
	}

	panelCount := int(math.Ceil(panelRatio))
	monthlySavings := monthlyConsumptionKWh * CostPerKWh
	installationCost := float64(panelCount) * InstallCostPerPanel
	annualSavings := monthlySavings * MonthsPerYear
	paybackYears := installationCost / annualSavings
	if math.IsInf(paybackYears, 0) || math.IsNaN(paybackYears) {
		return SizingResult{}, newInvalidInputError(formatFloat(monthlyConsumptionKWh), reasonTooSmall)
	}

	return SizingResult{
		MonthlyConsumptionKWh: monthlyConsumptionKWh,
		SystemPowerKW:         systemPowerKW,
		PanelCount:            panelCount,
		InstalledPowerKW:      float64(panelCount) * PanelPowerW / wattsPerKilowatt,
		MonthlySavings:        monthlySavings,
		AnnualSavings:         annualSavings,
		InstallationCost:      installationCost,
		PaybackYears:          paybackYears,
		TotalAreaM2:           float64(panelCount) * PanelAreaM2,
	}, nil
}

// ComputeFromString parses raw user input and computes the sizing for it.
func ComputeFromString(raw string) (SizingResult, error) {
	kwh, err := ParseConsumption(raw)
	if err != nil {
		return SizingResult{}, err
	}
	return Compute(kwh)
}

func checkConsumption(kwh float64) error {
	switch {
	case math.IsNaN(kwh) || math.IsInf(kwh, 0):
		return newInvalidInputError(formatFloat(kwh), "monthly consumption must be a finite number")
	case kwh <= 0:
		return newInvalidInputError(formatFloat(kwh), "monthly consumption must be greater than zero")
	}
	return nil
}

const reasonTooSmall = "monthly consumption is too small to size"

// checkPanelRatio rejects values that underflow to zero panels or would
// need more than MaxPanelCount panels.
func checkPanelRatio(kwh, panelRatio float64) error {
	switch {
	case !(panelRatio > 0):
		return newInvalidInputError(formatFloat(kwh), reasonTooSmall)
	case panelRatio > MaxPanelCount:
		return newInvalidInputError(formatFloat(kwh),
			fmt.Sprintf("monthly consumption is too large to size (over %s panels)", formatFloat(MaxPanelCount)))
	}
	return nil
}
