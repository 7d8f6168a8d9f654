package utils

import "time"

// CalculateAge returns whole years between birthday and now.
func CalculateAge(birthday time.Time) int {
	now := time.Now()
	age := now.Year() - birthday.Year()
	if now.Before(birthday.AddDate(age, 0, 0)) {
		age--
	}
	return age
}
