package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile mirrors the user's row in the profiles table. The ID is the
// subject of the auth token; accounts themselves live in the auth provider.
type Profile struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	Goal                string    `gorm:"size:20" json:"goal"`
	Gender              string    `gorm:"size:10" json:"gender"`
	Age                 int       `json:"age"`
	Height              float64   `json:"height"`
	Weight              float64   `json:"weight"`
	DesiredWeight       float64   `json:"desired_weight"`
	Pace                string    `gorm:"size:20" json:"pace"`
	DailyCaloriesTarget int       `json:"daily_calories_target"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

// BodyProfile extracts the calculator input from a stored profile.
func (p *Profile) BodyProfile() BodyProfile {
	return BodyProfile{
		Gender:          Gender(p.Gender),
		AgeYears:        p.Age,
		HeightCm:        p.Height,
		WeightKg:        p.Weight,
		DesiredWeightKg: p.DesiredWeight,
		Goal:            Goal(p.Goal),
	}
}
