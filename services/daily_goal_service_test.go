package services

import (
	"context"
	"testing"
	"time"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addEntry(logs *fakeLogs, user uuid.UUID, day time.Time, meal string, kcal float64) {
	_ = logs.Create(context.Background(), &models.FoodLogEntry{
		UserID: user, Date: CalendarDay(day), MealType: meal, FoodName: meal, Calories: kcal, Protein: 10, Carbs: 20, Fat: 5,
	})
}

func TestSummaryDefaultTarget(t *testing.T) {
	profiles, logs := newFakeProfiles(), &fakeLogs{}
	user := uuid.New()
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	addEntry(logs, user, day, models.MealDinner, 500)
	addEntry(logs, user, day, models.MealBreakfast, 300)
	addEntry(logs, user, day.AddDate(0, 0, -1), models.MealLunch, 900)

	got, err := NewDailyGoalService(profiles, logs).Summary(context.Background(), user, day)
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01", got.Date)
	assert.Equal(t, DefaultDailyTarget, got.Target)
	assert.Equal(t, 800.0, got.Consumed)
	assert.Equal(t, 1200.0, got.Remaining)
	assert.Equal(t, 40, got.Percentage)
	assert.Equal(t, 20.0, got.Protein)

	require.Len(t, got.Meals, 2)
	assert.Equal(t, models.MealBreakfast, got.Meals[0].MealType)
	assert.Equal(t, "🌅 Breakfast", got.Meals[0].Label)
	assert.Equal(t, "🌙 Dinner", got.Meals[1].Label)
}

func TestSummaryClampsPercentage(t *testing.T) {
	profiles, logs := newFakeProfiles(), &fakeLogs{}
	user := uuid.New()
	profiles.rows[user] = models.Profile{ID: user, DailyCaloriesTarget: 1570}
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	addEntry(logs, user, day, models.MealLunch, 1000)
	addEntry(logs, user, day, models.MealDinner, 1000)

	got, err := NewDailyGoalService(profiles, logs).Summary(context.Background(), user, day)
	require.NoError(t, err)
	assert.Equal(t, 1570, got.Target)
	assert.Equal(t, 100, got.Percentage)
	assert.Equal(t, 0.0, got.Remaining)
}

func TestSummaryProfileError(t *testing.T) {
	profiles := newFakeProfiles()
	profiles.getErr = errBoom
	_, err := NewDailyGoalService(profiles, &fakeLogs{}).Summary(context.Background(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, errBoom)
}

func TestSetTarget(t *testing.T) {
	profiles := newFakeProfiles()
	svc := NewDailyGoalService(profiles, &fakeLogs{})
	user := uuid.New()

	require.NoError(t, svc.SetTarget(context.Background(), user, "a@b.c", 1800))
	assert.Equal(t, 1800, profiles.rows[user].DailyCaloriesTarget)
	assert.Equal(t, []string{"daily_calories_target"}, profiles.upserts[0])

	err := svc.SetTarget(context.Background(), user, "", 200)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, profiles.upserts, 1)
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0, progressPercent(100, 0))
	assert.Equal(t, 50, progressPercent(1000, 2000))
	assert.Equal(t, 1, progressPercent(10, 2000))
	assert.Equal(t, 100, progressPercent(2500, 2000))
}
