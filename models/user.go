package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	// Default estimation profile, filled in during onboarding.
	Birthday   time.Time
	Height     float64 // cm
	Weight     float64 // kg
	Sex        string
	Activity   string
	Aim        string
	GoalWeight *float64 // kg, nil when the user has not set a target
	Onboarded  bool
}
