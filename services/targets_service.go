package services

import (
	"math"
	"strconv"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/SoyPhilips/BalanceAI-Pro/utils"
)

const (
	sedentaryMultiplier = 1.2
	// DefaultDailyTarget is used whenever no usable target is stored.
	DefaultDailyTarget = 2000
)

// Targets is the calculator output for one body profile.
type Targets struct {
	Maintenance int                 `json:"maintenance"`
	Options     []models.PaceOption `json:"options"`
	BMI         float64             `json:"bmi,omitempty"`
	BMICategory string              `json:"bmi_category,omitempty"`
}

type paceStep struct {
	id, label, timeframe string
	delta                int
	weeklyKg             float64
}

var paceSteps = []paceStep{
	{models.PaceSlow, "Gentle Pace", "Slow & Steady", 250, 0.25},
	{models.PaceModerate, "Moderate Pace", "Recommended", 500, 0.5},
	{models.PaceFast, "Intense Pace", "Fast Results", 750, 0.75},
}

// BMR is the Mifflin-St Jeor basal metabolic rate.
func BMR(p models.BodyProfile) float64 {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.AgeYears)
	if p.Gender == models.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// ComputeTargets derives maintenance calories and the pace options for p.
// p must already have passed ValidateBodyProfile.
func ComputeTargets(p models.BodyProfile) Targets {
	maintenance := int(math.Round(BMR(p) * sedentaryMultiplier))
	t := Targets{Maintenance: maintenance}

	if p.Goal == models.GoalMaintain {
		t.Options = []models.PaceOption{{
			ID:                 models.PaceMaintain,
			Label:              "Maintain Weight",
			DailyCalorieTarget: maintenance,
			Description:        "Keep your current weight stable.",
			Timeframe:          "Forever",
		}}
		return t
	}

	sign, verb := -1, "Lose"
	if p.Goal.Gaining() {
		sign, verb = 1, "Gain"
	}
	for _, s := range paceSteps {
		t.Options = append(t.Options, models.PaceOption{
			ID:                 s.id,
			Label:              s.label,
			DailyCalorieTarget: maintenance + sign*s.delta,
			Description:        verb + " ~" + strconv.FormatFloat(s.weeklyKg, 'f', -1, 64) + "kg/week",
			Timeframe:          s.timeframe,
			WeeklyChangeKg:     float64(sign) * s.weeklyKg,
		})
	}
	return t
}

// ComputeTargetsWithBMI adds the BMI reading to the calculator output when
// height and weight allow one.
func ComputeTargetsWithBMI(p models.BodyProfile) Targets {
	t := ComputeTargets(p)
	if bmi, err := utils.CalculateBMI(p.HeightCm, p.WeightKg); err == nil {
		t.BMI = math.Round(bmi*10) / 10
		t.BMICategory = utils.BMICategory(bmi)
	}
	return t
}

// SelectDailyTarget returns the calories of the option with paceID, or
// maintenance when no option matches. Non-positive results fall back to
// DefaultDailyTarget.
func SelectDailyTarget(t Targets, paceID string) int {
	target := t.Maintenance
	for _, o := range t.Options {
		if o.ID == paceID {
			target = o.DailyCalorieTarget
			break
		}
	}
	if target <= 0 {
		return DefaultDailyTarget
	}
	return target
}

// HasPace reports whether paceID is one of the offered options.
func (t Targets) HasPace(paceID string) bool {
	for _, o := range t.Options {
		if o.ID == paceID {
			return true
		}
	}
	return false
}

// ValidateBodyProfile checks ranges and the desired-weight direction for
// the goal. Messages match what the onboarding form shows.
func ValidateBodyProfile(p models.BodyProfile) error {
	fe := fieldErrors{}
	validateBody(p, fe)
	return fe.err()
}

func validateBody(p models.BodyProfile, fe fieldErrors) {
	if !p.Goal.Valid() {
		fe.add("goal", "Please select a goal")
	}
	if !p.Gender.Valid() {
		fe.add("gender", "Required")
	}
	if p.AgeYears < 15 || p.AgeYears > 99 {
		fe.add("age", "Age must be 15-99")
	}
	if p.HeightCm < 100 || p.HeightCm > 250 {
		fe.add("height", "Invalid height")
	}
	if p.WeightKg < 30 || p.WeightKg > 300 {
		fe.add("weight", "Invalid weight")
	}
	switch {
	case p.DesiredWeightKg <= 0:
		fe.add("desired_weight", "Required")
	case p.Goal == models.GoalLose && p.DesiredWeightKg >= p.WeightKg:
		fe.add("desired_weight", "Desired weight must be lower than current weight")
	case p.Goal.Gaining() && p.DesiredWeightKg <= p.WeightKg:
		fe.add("desired_weight", "Desired weight must be higher than current weight")
	}
}
