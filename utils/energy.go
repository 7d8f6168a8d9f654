package utils

import (
	"math"

	"kcalplan/models"
)

// activityFactors is the single source of truth for the TDEE multipliers.
var activityFactors = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLightly:    1.375,
	models.ActivityModerately: 1.55,
	models.ActivityVery:       1.725,
	models.ActivityExtremely:  1.9,
}

// BMR expects height in centimeters, weight in kilograms and age in years,
// and returns basal metabolic rate in kcal/day (Harris-Benedict style
// linear model, per sex).
func BMR(sex models.Sex, weightKg, heightCm, ageYears float64) float64 {
	if sex == models.SexMale {
		return 66 + 13.7*weightKg + 5*heightCm - 6.8*ageYears
	}
	return 655 + 9.6*weightKg + 1.8*heightCm - 4.7*ageYears
}

// ActivityFactor returns the TDEE multiplier for an activity level.
func ActivityFactor(level models.ActivityLevel) (float64, bool) {
	f, ok := activityFactors[level]
	return f, ok
}

// TDEE is the activity-scaled daily expenditure, floored to whole kcal.
func TDEE(bmr, factor float64) int {
	return int(math.Floor(bmr * factor))
}

// CalorieTarget adjusts TDEE for the weight aim: a flat 300 kcal surplus
// for gain, a 20% deficit (floored) for lose, TDEE itself for maintain.
func CalorieTarget(aim models.WeightAim, tdee int) int {
	switch aim {
	case models.AimGain:
		return tdee + 300
	case models.AimLose:
		return int(math.Floor(float64(tdee) * 0.8))
	default:
		return tdee
	}
}
