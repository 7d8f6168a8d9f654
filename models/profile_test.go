package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSex(t *testing.T) {
	for _, s := range []string{"female", "male"} {
		sex, err := ParseSex(s)
		require.NoError(t, err)
		assert.Equal(t, Sex(s), sex)
	}

	_, err := ParseSex("other")
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "sex", verr.Field)
	assert.Equal(t, `invalid sex: "other"`, verr.Error())
}

func TestParseActivityLevel(t *testing.T) {
	for _, s := range []string{"sedentary", "lightly", "moderately", "very", "extremely"} {
		level, err := ParseActivityLevel(s)
		require.NoError(t, err)
		assert.Equal(t, ActivityLevel(s), level)
	}

	// "active" is a common guess but not a recognized level
	_, err := ParseActivityLevel("active")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "activity", verr.Field)
}

func TestParseWeightAim(t *testing.T) {
	for _, s := range []string{"lose", "maintain", "gain"} {
		aim, err := ParseWeightAim(s)
		require.NoError(t, err)
		assert.Equal(t, WeightAim(s), aim)
	}

	_, err := ParseWeightAim("bulk")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "aim", verr.Field)
}

func TestProfileValidate(t *testing.T) {
	p := Profile{Height: 182, Weight: 84, Age: 23, Sex: SexMale, Activity: ActivityModerately, Aim: AimGain}
	assert.NoError(t, p.Validate())

	p.Sex = "unknown"
	assert.Error(t, p.Validate())
}

func TestValidationErrorReason(t *testing.T) {
	err := &ValidationError{Field: "aim", Value: "maintain", Reason: "maintain does not define a direction toward a goal weight"}
	assert.Equal(t, "invalid aim: maintain does not define a direction toward a goal weight", err.Error())
}
