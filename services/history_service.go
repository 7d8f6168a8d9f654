// services/history_service.go
package services

import (
	"kcalplan/config"
	"kcalplan/models"
	"kcalplan/utils"
)

// EstimateForUser runs the estimator over the user's stored profile and
// records a snapshot of the run. Range mode is used when the profile has a
// goal weight and an aim that walks toward one.
func EstimateForUser(user models.User) (models.ResultTable, []utils.Warning, error) {
	profile, err := ProfileFromUser(user)
	if err != nil {
		return models.ResultTable{}, nil, err
	}

	var req models.EstimateRequest
	if user.GoalWeight != nil && profile.Aim != models.AimMaintain {
		req = models.RangeEstimate{Profile: profile, GoalWeight: *user.GoalWeight}
	} else {
		req = models.PointEstimate{Profile: profile}
	}

	table, warnings, err := Estimate(req)
	if err != nil {
		return models.ResultTable{}, nil, err
	}

	head := table.Rows[0]
	record := models.EstimateRecord{
		UserID:     user.ID,
		Height:     profile.Height,
		Weight:     profile.Weight,
		Age:        profile.Age,
		Sex:        string(profile.Sex),
		Activity:   string(profile.Activity),
		Aim:        string(profile.Aim),
		GoalWeight: user.GoalWeight,
		BMR:        head.BMR,
		TDEE:       head.TDEE,
		Calories:   head.Calories,
		RowCount:   len(table.Rows),
	}
	if err := config.DB.Create(&record).Error; err != nil {
		return models.ResultTable{}, nil, err
	}

	return table, warnings, nil
}

// ListEstimates returns a user's saved snapshots, newest first.
func ListEstimates(userID uint) ([]models.EstimateRecord, error) {
	var records []models.EstimateRecord
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}
