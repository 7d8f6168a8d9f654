package utils

import (
	"fmt"

	"kcalplan/models"
)

// WarningSeverity categorizes how serious the flag is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
)

// Warning is a structured advisory you can show in your API / UI. It never
// aborts a computation; the estimator trusts the caller's numbers and only
// flags values that look like unit mistakes (pounds for kilograms, meters
// for centimeters).
type Warning struct {
	Code     string          `json:"code"`
	Severity WarningSeverity `json:"severity"`
	Message  string          `json:"message"`
	Metric   string          `json:"metric,omitempty"`
	Value    float64         `json:"value,omitempty"`
}

// Plausible bands. Values on the wrong side of these produce an advisory;
// the upper bounds are inclusive, the lower bounds exclusive.
const (
	MinPlausibleHeightCm = 100.0
	MaxPlausibleHeightCm = 250.0
	MinPlausibleWeightKg = 30.0
	MaxPlausibleWeightKg = 250.0
	MaxPlausibleAgeYears = 100.0
)

func heightWarning(metric string, heightCm float64) *Warning {
	if heightCm > MinPlausibleHeightCm && heightCm <= MaxPlausibleHeightCm {
		return nil
	}
	return &Warning{
		Code:     "HEIGHT_RANGE",
		Severity: Caution,
		Message:  fmt.Sprintf("height %.1f cm is outside the plausible range (%.0f, %.0f] — check the unit", heightCm, MinPlausibleHeightCm, MaxPlausibleHeightCm),
		Metric:   metric,
		Value:    heightCm,
	}
}

func weightWarning(metric string, weightKg float64) *Warning {
	if weightKg > MinPlausibleWeightKg && weightKg <= MaxPlausibleWeightKg {
		return nil
	}
	return &Warning{
		Code:     "WEIGHT_RANGE",
		Severity: Caution,
		Message:  fmt.Sprintf("%s %.1f kg is outside the plausible range (%.0f, %.0f] — check the unit", metric, weightKg, MinPlausibleWeightKg, MaxPlausibleWeightKg),
		Metric:   metric,
		Value:    weightKg,
	}
}

func ageWarning(ageYears float64) *Warning {
	if ageYears < MaxPlausibleAgeYears {
		return nil
	}
	return &Warning{
		Code:     "AGE_RANGE",
		Severity: Caution,
		Message:  fmt.Sprintf("age %.0f is %.0f or above — check the value", ageYears, MaxPlausibleAgeYears),
		Metric:   "age",
		Value:    ageYears,
	}
}

// CheckPlausibility flags profile values outside the plausible bands.
// Only emits findings; never errors.
func CheckPlausibility(p models.Profile) []Warning {
	warnings := []Warning{}
	if w := heightWarning("height", p.Height); w != nil {
		warnings = append(warnings, *w)
	}
	if w := weightWarning("weight", p.Weight); w != nil {
		warnings = append(warnings, *w)
	}
	if w := ageWarning(p.Age); w != nil {
		warnings = append(warnings, *w)
	}
	return warnings
}

// CheckGoalPlausibility applies the weight band to a goal weight.
func CheckGoalPlausibility(goalKg float64) []Warning {
	if w := weightWarning("goal_weight", goalKg); w != nil {
		return []Warning{*w}
	}
	return nil
}
