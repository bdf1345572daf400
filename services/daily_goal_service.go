package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/SoyPhilips/BalanceAI-Pro/repository"
	"github.com/google/uuid"
)

type MealGroup struct {
	MealType string                `json:"meal_type"`
	Label    string                `json:"label"`
	Calories float64               `json:"calories"`
	Entries  []models.FoodLogEntry `json:"entries"`
}

type DailySummary struct {
	Date       string      `json:"date"`
	Target     int         `json:"target"`
	Consumed   float64     `json:"consumed"`
	Remaining  float64     `json:"remaining"`
	Percentage int         `json:"percentage"`
	Protein    float64     `json:"protein"`
	Carbs      float64     `json:"carbs"`
	Fat        float64     `json:"fat"`
	Meals      []MealGroup `json:"meals"`
}

type DailyGoalService struct {
	profiles repository.ProfileRepository
	logs     repository.FoodLogRepository
}

func NewDailyGoalService(profiles repository.ProfileRepository, logs repository.FoodLogRepository) *DailyGoalService {
	return &DailyGoalService{profiles: profiles, logs: logs}
}

// Summary totals the user's entries for day against their daily target.
func (s *DailyGoalService) Summary(ctx context.Context, userID uuid.UUID, day time.Time) (*DailySummary, error) {
	day = CalendarDay(day)

	target := DefaultDailyTarget
	p, err := s.profiles.Get(ctx, userID)
	switch {
	case err == nil:
		if p.DailyCaloriesTarget > 0 {
			target = p.DailyCaloriesTarget
		}
	case errors.Is(err, repository.ErrNotFound):
	default:
		return nil, err
	}

	entries, err := s.logs.ListByDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	out := &DailySummary{Date: day.Format("2006-01-02"), Target: target}
	groups := map[string]*MealGroup{}
	for _, e := range entries {
		out.Consumed += e.Calories
		out.Protein += e.Protein
		out.Carbs += e.Carbs
		out.Fat += e.Fat

		g, ok := groups[e.MealType]
		if !ok {
			g = &MealGroup{MealType: e.MealType, Label: models.MealTypeLabel(e.MealType)}
			groups[e.MealType] = g
		}
		g.Calories += e.Calories
		g.Entries = append(g.Entries, e)
	}
	for _, m := range models.MealTypes {
		if g, ok := groups[m]; ok {
			out.Meals = append(out.Meals, *g)
		}
	}

	out.Remaining = math.Max(0, float64(target)-out.Consumed)
	out.Percentage = progressPercent(out.Consumed, float64(target))
	return out, nil
}

// Daily targets outside this range are rejected when set by hand.
const (
	minManualTarget = 800
	maxManualTarget = 10000
)

// SetTarget overrides the daily calorie target chosen during onboarding.
func (s *DailyGoalService) SetTarget(ctx context.Context, userID uuid.UUID, email string, target int) error {
	if target < minManualTarget || target > maxManualTarget {
		return &ValidationError{Fields: map[string]string{
			"daily_calories_target": fmt.Sprintf("Must be between %d and %d", minManualTarget, maxManualTarget),
		}}
	}
	return s.profiles.Upsert(ctx, &models.Profile{ID: userID, Email: email, DailyCaloriesTarget: target}, "daily_calories_target")
}

// progressPercent is consumed/target as a whole percentage, capped at 100.
func progressPercent(consumed, target float64) int {
	if target <= 0 {
		return 0
	}
	p := int(math.Round(consumed / target * 100))
	if p > 100 {
		return 100
	}
	return p
}
