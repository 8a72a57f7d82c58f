package solar

// Parameters describes the fixed values the calculator runs with.
type Parameters struct {
	PanelPowerW         float64 `json:"panelPowerW"`
	CostPerKWh          float64 `json:"costPerKWh"`
	InstallCostPerPanel float64 `json:"installCostPerPanel"`
	DailySunHours       float64 `json:"dailySunHours"`
	DaysPerMonth        float64 `json:"daysPerMonth"`
	SunHoursPerMonth    float64 `json:"sunHoursPerMonth"`
	PanelAreaM2         float64 `json:"panelAreaM2"`
	SafetyFactor        float64 `json:"safetyFactor"`
	MonthsPerYear       int     `json:"monthsPerYear"`
}

// Constants returns the calculator's fixed parameters.
func Constants() Parameters {
	return Parameters{
		PanelPowerW:         PanelPowerW,
		CostPerKWh:          CostPerKWh,
		InstallCostPerPanel: InstallCostPerPanel,
		DailySunHours:       DailySunHours,
		DaysPerMonth:        DaysPerMonth,
		SunHoursPerMonth:    DailySunHours * DaysPerMonth,
		PanelAreaM2:         PanelAreaM2,
		SafetyFactor:        SafetyFactor,
		MonthsPerYear:       MonthsPerYear,
	}
}

// SafetyMarginPercent returns the oversizing margin as a percentage (25 for 1.25).
func (p Parameters) SafetyMarginPercent() float64 {
	return (p.SafetyFactor - 1) * 100
}
