package services

import (
	"errors"
	"time"

	"kcalplan/config"
	"kcalplan/models"
	"kcalplan/utils"
)

type ProfileInput struct {
	FullName   string   `json:"full_name"`
	Birthday   string   `json:"birthday"` // sent as YYYY-MM-DD
	Height     float64  `json:"height"`
	Weight     float64  `json:"weight"`
	Sex        string   `json:"sex"`
	Activity   string   `json:"activity"`
	Aim        string   `json:"aim"`
	GoalWeight *float64 `json:"goal_weight"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	return map[string]interface{}{
		"id":          user.ID,
		"email":       user.Email,
		"full_name":   user.FullName,
		"birthday":    user.Birthday.Format("2006-01-02"),
		"age":         age,
		"height":      user.Height,
		"weight":      user.Weight,
		"sex":         user.Sex,
		"activity":    user.Activity,
		"aim":         user.Aim,
		"goal_weight": user.GoalWeight,
		"onboarded":   user.Onboarded,
	}, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return err
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}

	if input.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", input.Birthday)
		if err != nil {
			return errors.New("invalid birthday format, use YYYY-MM-DD")
		}
		user.Birthday = birthday
	}

	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}

	// Enum fields are validated at this boundary so a stored profile can
	// always be estimated without re-checking.
	if input.Sex != "" {
		sex, err := models.ParseSex(input.Sex)
		if err != nil {
			return err
		}
		user.Sex = string(sex)
	}
	if input.Activity != "" {
		activity, err := models.ParseActivityLevel(input.Activity)
		if err != nil {
			return err
		}
		user.Activity = string(activity)
	}
	if input.Aim != "" {
		aim, err := models.ParseWeightAim(input.Aim)
		if err != nil {
			return err
		}
		user.Aim = string(aim)
	}
	if input.GoalWeight != nil {
		user.GoalWeight = input.GoalWeight
	}

	user.Onboarded = user.Height > 0 && user.Weight > 0 &&
		user.Sex != "" && user.Activity != "" && user.Aim != "" &&
		!user.Birthday.IsZero()

	return config.DB.Save(&user).Error
}

// ProfileFromUser builds the estimator input from a stored user profile.
func ProfileFromUser(user models.User) (models.Profile, error) {
	if !user.Onboarded {
		return models.Profile{}, errors.New("profile incomplete: set height, weight, birthday, sex, activity and aim first")
	}
	return models.Profile{
		Height:   user.Height,
		Weight:   user.Weight,
		Age:      float64(utils.CalculateAge(user.Birthday)),
		Sex:      models.Sex(user.Sex),
		Activity: models.ActivityLevel(user.Activity),
		Aim:      models.WeightAim(user.Aim),
	}, nil
}
