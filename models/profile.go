package models

import "fmt"

// Sex is the biological sex used by the BMR formula.
type Sex string

const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"
)

// ActivityLevel selects the multiplier applied to BMR to obtain TDEE.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLightly    ActivityLevel = "lightly"
	ActivityModerately ActivityLevel = "moderately"
	ActivityVery       ActivityLevel = "very"
	ActivityExtremely  ActivityLevel = "extremely"
)

// WeightAim is the desired weight-change direction.
type WeightAim string

const (
	AimLose     WeightAim = "lose"
	AimMaintain WeightAim = "maintain"
	AimGain     WeightAim = "gain"
)

// ValidationError reports an input value outside its closed enumeration,
// or a combination of inputs the estimator rejects.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

func ParseSex(s string) (Sex, error) {
	switch Sex(s) {
	case SexFemale, SexMale:
		return Sex(s), nil
	}
	return "", &ValidationError{Field: "sex", Value: s}
}

func ParseActivityLevel(s string) (ActivityLevel, error) {
	switch ActivityLevel(s) {
	case ActivitySedentary, ActivityLightly, ActivityModerately, ActivityVery, ActivityExtremely:
		return ActivityLevel(s), nil
	}
	return "", &ValidationError{Field: "activity", Value: s}
}

func ParseWeightAim(s string) (WeightAim, error) {
	switch WeightAim(s) {
	case AimLose, AimMaintain, AimGain:
		return WeightAim(s), nil
	}
	return "", &ValidationError{Field: "aim", Value: s}
}

// Profile holds the personal parameters the estimator works from.
// Height is in centimeters, weight in kilograms, age in years.
type Profile struct {
	Height   float64       `json:"height"`
	Weight   float64       `json:"weight"`
	Age      float64       `json:"age"`
	Sex      Sex           `json:"sex"`
	Activity ActivityLevel `json:"activity"`
	Aim      WeightAim     `json:"aim"`
}

// Validate rejects enumeration values outside their closed sets. Numeric
// fields are deliberately not rejected here; implausible ones only produce
// advisories (see utils.CheckPlausibility).
func (p Profile) Validate() error {
	if _, err := ParseSex(string(p.Sex)); err != nil {
		return err
	}
	if _, err := ParseActivityLevel(string(p.Activity)); err != nil {
		return err
	}
	if _, err := ParseWeightAim(string(p.Aim)); err != nil {
		return err
	}
	return nil
}
