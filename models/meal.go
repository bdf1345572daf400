package models

import (
	"time"

	"github.com/google/uuid"
)

// Meal types a log entry can be filed under.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealTypes lists the meal types in the order a day is displayed.
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

var mealLabels = map[string]string{
	MealBreakfast: "🌅 Breakfast",
	MealLunch:     "☀️ Lunch",
	MealDinner:    "🌙 Dinner",
	MealSnack:     "🍎 Snack",
}

func IsMealType(s string) bool {
	_, ok := mealLabels[s]
	return ok
}

// MealTypeLabel returns the display label, or the raw type if unknown.
func MealTypeLabel(s string) string {
	if l, ok := mealLabels[s]; ok {
		return l
	}
	return s
}

// MealOrder ranks meal types for sorting; unknown types go last.
func MealOrder(s string) int {
	for i, m := range MealTypes {
		if m == s {
			return i + 1
		}
	}
	return 99
}

// FoodLogEntry is one logged food for one user and day. Entries are
// append-only: created on confirmation, removed on explicit delete.
type FoodLogEntry struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index:idx_daily_logs_user_date;not null" json:"user_id"`
	Date     time.Time `gorm:"type:date;index:idx_daily_logs_user_date;not null" json:"date"` // calendar day, time part zero
	MealType string    `gorm:"size:20;not null" json:"meal_type"`
	FoodName string    `gorm:"not null" json:"food_name"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Tips     string    `gorm:"type:text" json:"tips,omitempty"`
	PhotoURL string    `json:"photo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (FoodLogEntry) TableName() string { return "daily_logs" }
