package models

import (
	"gorm.io/gorm"
)

// EstimateRecord is a saved snapshot of an estimate run from a user's
// stored profile. It keeps the inputs and the headline (current-weight)
// row; the full table is recomputed on demand since the estimator is
// deterministic.
type EstimateRecord struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`

	Height     float64
	Weight     float64
	Age        float64
	Sex        string
	Activity   string
	Aim        string
	GoalWeight *float64

	BMR      float64
	TDEE     int
	Calories int
	RowCount int
}
