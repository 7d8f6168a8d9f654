package models

// Column names of a ResultTable, in order. Downstream consumers (e.g. the
// charting frontend) read the weight and calories columns by these names.
const (
	ColWeight   = "weight"
	ColBMR      = "bmr"
	ColTDEE     = "tdee"
	ColCalories = "calories"
)

// ResultRow is the estimate for a single weight value.
type ResultRow struct {
	Weight   float64 `json:"weight"`
	BMR      float64 `json:"bmr"`
	TDEE     int     `json:"tdee"`
	Calories int     `json:"calories"`
}

// ResultTable is an ordered sequence of rows, one per evaluated weight.
// Point estimates hold exactly one row; range estimates hold one row per
// kilogram step plus the appended goal row.
type ResultTable struct {
	Columns []string    `json:"columns"`
	Rows    []ResultRow `json:"rows"`
}

func NewResultTable(rows []ResultRow) ResultTable {
	return ResultTable{
		Columns: []string{ColWeight, ColBMR, ColTDEE, ColCalories},
		Rows:    rows,
	}
}

// Column returns the named column as a float64 slice, or nil for an
// unknown name.
func (t ResultTable) Column(name string) []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		switch name {
		case ColWeight:
			out[i] = r.Weight
		case ColBMR:
			out[i] = r.BMR
		case ColTDEE:
			out[i] = float64(r.TDEE)
		case ColCalories:
			out[i] = float64(r.Calories)
		default:
			return nil
		}
	}
	return out
}

// EstimateRequest is a closed set of request variants: a single-weight
// estimate or a walk from the current weight to a goal weight.
type EstimateRequest interface {
	estimateRequest()
}

// PointEstimate asks for exactly one row at the profile's weight.
type PointEstimate struct {
	Profile Profile
}

// RangeEstimate asks for one row per whole-kilogram step from the
// profile's weight toward GoalWeight, plus a final row at the goal.
type RangeEstimate struct {
	Profile    Profile
	GoalWeight float64
}

func (PointEstimate) estimateRequest() {}
func (RangeEstimate) estimateRequest() {}
