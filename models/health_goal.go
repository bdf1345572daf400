package models

type Goal string

const (
	GoalLose       Goal = "lose"
	GoalMaintain   Goal = "maintain"
	GoalGainMuscle Goal = "gain_muscle"
	GoalGainWeight Goal = "gain_weight"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalLose, GoalMaintain, GoalGainMuscle, GoalGainWeight:
		return true
	}
	return false
}

// Gaining reports whether the goal adds calories on top of maintenance.
func (g Goal) Gaining() bool {
	return g == GoalGainMuscle || g == GoalGainWeight
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// BodyProfile holds the metrics the calorie targets are computed from.
type BodyProfile struct {
	Gender          Gender  `json:"gender"`
	AgeYears        int     `json:"age"`
	HeightCm        float64 `json:"height"`
	WeightKg        float64 `json:"weight"`
	DesiredWeightKg float64 `json:"desired_weight"`
	Goal            Goal    `json:"goal"`
}

// Pace identifiers.
const (
	PaceMaintain = "maintain"
	PaceSlow     = "slow"
	PaceModerate = "moderate"
	PaceFast     = "fast"
)

// PaceOption is one selectable daily calorie target. Derived from a
// BodyProfile on every request, never stored on its own.
type PaceOption struct {
	ID                 string  `json:"id"`
	Label              string  `json:"label"`
	DailyCalorieTarget int     `json:"calories"`
	Description        string  `json:"description"`
	Timeframe          string  `json:"time"`
	WeeklyChangeKg     float64 `json:"weekly_change_kg"`
}
