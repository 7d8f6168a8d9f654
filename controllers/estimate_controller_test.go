package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func estimateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/estimate", PostEstimate)
	return r
}

func postEstimate(t *testing.T, r *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/estimate", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostEstimateSingle(t *testing.T) {
	r := estimateRouter()
	w := postEstimate(t, r, map[string]interface{}{
		"height":   182,
		"weight":   84,
		"age":      23,
		"sex":      "male",
		"activity": "moderately",
		"aim":      "gain",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Columns    []string `json:"columns"`
		Rows       []struct {
			Weight   float64 `json:"weight"`
			BMR      float64 `json:"bmr"`
			TDEE     int     `json:"tdee"`
			Calories int     `json:"calories"`
		} `json:"rows"`
		Advisories []map[string]interface{} `json:"advisories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, []string{"weight", "bmr", "tdee", "calories"}, resp.Columns)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, 3054, resp.Rows[0].TDEE)
	assert.Equal(t, 3354, resp.Rows[0].Calories)
	assert.Empty(t, resp.Advisories)
}

func TestPostEstimateRange(t *testing.T) {
	r := estimateRouter()
	w := postEstimate(t, r, map[string]interface{}{
		"height":   182,
		"weight":   84,
		"age":      23,
		"sex":      "male",
		"activity": "moderately",
		"aim":      "gain",
		"goal":     89,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Rows []struct {
			Weight   float64 `json:"weight"`
			TDEE     int     `json:"tdee"`
			Calories int     `json:"calories"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 6)
	assert.Equal(t, 89.0, resp.Rows[5].Weight)
	assert.Equal(t, resp.Rows[5].TDEE, resp.Rows[5].Calories)
}

func TestPostEstimateInvalidAim(t *testing.T) {
	r := estimateRouter()
	w := postEstimate(t, r, map[string]interface{}{
		"height":   182,
		"weight":   84,
		"age":      23,
		"sex":      "male",
		"activity": "moderately",
		"aim":      "bulk",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid aim")
}

func TestPostEstimateMissingFields(t *testing.T) {
	r := estimateRouter()
	w := postEstimate(t, r, map[string]interface{}{"height": 182})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostEstimateAdvisoryStillReturnsRows(t *testing.T) {
	r := estimateRouter()
	w := postEstimate(t, r, map[string]interface{}{
		"height":   260,
		"weight":   84,
		"age":      23,
		"sex":      "male",
		"activity": "moderately",
		"aim":      "maintain",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Rows       []map[string]interface{} `json:"rows"`
		Advisories []struct {
			Code string `json:"code"`
		} `json:"advisories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Rows, 1)
	require.Len(t, resp.Advisories, 1)
	assert.Equal(t, "HEIGHT_RANGE", resp.Advisories[0].Code)
}
