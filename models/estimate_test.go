package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultTableColumns(t *testing.T) {
	table := NewResultTable([]ResultRow{
		{Weight: 84, BMR: 1970.4, TDEE: 3054, Calories: 3354},
		{Weight: 85, BMR: 1984.1, TDEE: 3075, Calories: 3375},
	})

	assert.Equal(t, []string{"weight", "bmr", "tdee", "calories"}, table.Columns)

	// Chart consumers read weight and calories by name.
	assert.Equal(t, []float64{84, 85}, table.Column(ColWeight))
	assert.Equal(t, []float64{3354, 3375}, table.Column(ColCalories))
	assert.Equal(t, []float64{3054, 3075}, table.Column(ColTDEE))
	assert.Nil(t, table.Column("kcal"))
}
