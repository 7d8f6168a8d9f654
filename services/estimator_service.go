// services/estimator_service.go
package services

import (
	"fmt"
	"log"

	"kcalplan/models"
	"kcalplan/utils"
)

// Estimate dispatches over the request variants. PointEstimate yields a
// single row at the profile's weight; RangeEstimate yields one row per
// whole-kilogram step toward the goal plus the appended goal row.
func Estimate(req models.EstimateRequest) (models.ResultTable, []utils.Warning, error) {
	switch r := req.(type) {
	case models.PointEstimate:
		return EstimatePoint(r.Profile)
	case models.RangeEstimate:
		return EstimateRange(r.Profile, r.GoalWeight)
	default:
		return models.ResultTable{}, nil, fmt.Errorf("unsupported estimate request %T", req)
	}
}

// EstimateValues is the positional calling style: raw enum strings are
// parsed at the boundary, an optional trailing goal weight switches to
// range mode.
func EstimateValues(height, weight, age float64, sex, activity, aim string, goal ...float64) (models.ResultTable, []utils.Warning, error) {
	s, err := models.ParseSex(sex)
	if err != nil {
		return models.ResultTable{}, nil, err
	}
	act, err := models.ParseActivityLevel(activity)
	if err != nil {
		return models.ResultTable{}, nil, err
	}
	a, err := models.ParseWeightAim(aim)
	if err != nil {
		return models.ResultTable{}, nil, err
	}

	p := models.Profile{
		Height:   height,
		Weight:   weight,
		Age:      age,
		Sex:      s,
		Activity: act,
		Aim:      a,
	}
	if len(goal) > 0 {
		return EstimateRange(p, goal[0])
	}
	return EstimatePoint(p)
}

// EstimatePoint computes BMR, TDEE and the aim-adjusted calorie target for
// the profile's current weight.
func EstimatePoint(p models.Profile) (models.ResultTable, []utils.Warning, error) {
	if err := p.Validate(); err != nil {
		return models.ResultTable{}, nil, err
	}
	warnings := advise(utils.CheckPlausibility(p))

	factor, _ := utils.ActivityFactor(p.Activity)
	row := rowAt(p, factor, p.Weight, true)
	return models.NewResultTable([]models.ResultRow{row}), warnings, nil
}

// EstimateRange walks in 1 kg steps from the profile's weight toward goal,
// exclusive, emitting the aim-adjusted target for every intermediate step.
// The goal weight itself is appended as a final row whose calories are its
// plain maintenance TDEE: the target to hold once the goal is reached.
func EstimateRange(p models.Profile, goal float64) (models.ResultTable, []utils.Warning, error) {
	if err := p.Validate(); err != nil {
		return models.ResultTable{}, nil, err
	}
	if p.Aim == models.AimMaintain {
		return models.ResultTable{}, nil, &models.ValidationError{
			Field:  "aim",
			Value:  string(p.Aim),
			Reason: "maintain does not define a direction toward a goal weight",
		}
	}
	warnings := advise(append(utils.CheckPlausibility(p), utils.CheckGoalPlausibility(goal)...))

	factor, _ := utils.ActivityFactor(p.Activity)
	rows := []models.ResultRow{}
	switch p.Aim {
	case models.AimGain:
		for w := p.Weight; w < goal; w++ {
			rows = append(rows, rowAt(p, factor, w, true))
		}
	case models.AimLose:
		for w := p.Weight; w > goal; w-- {
			rows = append(rows, rowAt(p, factor, w, true))
		}
	}
	rows = append(rows, rowAt(p, factor, goal, false))

	return models.NewResultTable(rows), warnings, nil
}

func rowAt(p models.Profile, factor, weight float64, aimAdjusted bool) models.ResultRow {
	bmr := utils.BMR(p.Sex, weight, p.Height, p.Age)
	tdee := utils.TDEE(bmr, factor)
	calories := tdee
	if aimAdjusted {
		calories = utils.CalorieTarget(p.Aim, tdee)
	}
	return models.ResultRow{Weight: weight, BMR: bmr, TDEE: tdee, Calories: calories}
}

func advise(warnings []utils.Warning) []utils.Warning {
	for _, w := range warnings {
		log.Printf("advisory [%s]: %s", w.Code, w.Message)
	}
	return warnings
}
