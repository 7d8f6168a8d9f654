// controllers/estimate_controller.go
package controllers

import (
	"errors"
	"net/http"

	"kcalplan/models"
	"kcalplan/services"

	"github.com/gin-gonic/gin"
)

type EstimateInput struct {
	Height   float64  `json:"height" binding:"required"`
	Weight   float64  `json:"weight" binding:"required"`
	Age      float64  `json:"age" binding:"required"`
	Sex      string   `json:"sex" binding:"required"`
	Activity string   `json:"activity" binding:"required"`
	Aim      string   `json:"aim" binding:"required"`
	Goal     *float64 `json:"goal"`
}

// PostEstimate is the public, stateless calculator endpoint.
func PostEstimate(c *gin.Context) {
	var input EstimateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var goal []float64
	if input.Goal != nil {
		goal = append(goal, *input.Goal)
	}

	table, warnings, err := services.EstimateValues(
		input.Height, input.Weight, input.Age,
		input.Sex, input.Activity, input.Aim,
		goal...,
	)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"columns":    table.Columns,
		"rows":       table.Rows,
		"advisories": warnings,
	})
}

// GetUserEstimate runs the estimator over the caller's stored profile and
// saves a snapshot.
func GetUserEstimate(c *gin.Context) {
	email := c.GetString("email")
	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	table, warnings, err := services.EstimateForUser(user)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"columns":    table.Columns,
		"rows":       table.Rows,
		"advisories": warnings,
	})
}

// GetEstimateHistory lists the caller's saved snapshots, newest first.
func GetEstimateHistory(c *gin.Context) {
	email := c.GetString("email")
	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	records, err := services.ListEstimates(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}
