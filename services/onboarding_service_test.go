package services

import (
	"context"
	"testing"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldOf(t *testing.T, err error, field string) string {
	t.Helper()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	return ve.Fields[field]
}

func TestSubmitStepName(t *testing.T) {
	profiles := newFakeProfiles()
	svc := NewOnboardingService(profiles)
	ctx := context.Background()
	user := uuid.New()

	_, err := svc.SubmitStep(ctx, user, "", StepName, OnboardingForm{Name: "  "})
	assert.Equal(t, "Name is required", fieldOf(t, err, "name"))
	_, err = svc.SubmitStep(ctx, user, "", StepName, OnboardingForm{Name: "A"})
	assert.Equal(t, "Name must be at least 2 characters", fieldOf(t, err, "name"))
	_, err = svc.SubmitStep(ctx, user, "", StepName, OnboardingForm{Name: "Al3x"})
	assert.Equal(t, "Name must contain only letters", fieldOf(t, err, "name"))
	assert.Empty(t, profiles.upserts)

	res, err := svc.SubmitStep(ctx, user, "alex@example.com", StepName, OnboardingForm{Name: "Alex Smith"})
	require.NoError(t, err)
	assert.Equal(t, StepGoal, res.NextStep)
	assert.False(t, res.Done)
	assert.Equal(t, "Alex Smith", profiles.rows[user].Name)
	assert.Equal(t, "alex@example.com", profiles.rows[user].Email)
}

func TestSubmitStepSaveErrorDoesNotBlock(t *testing.T) {
	profiles := newFakeProfiles()
	profiles.upsertErr = errBoom
	svc := NewOnboardingService(profiles)

	res, err := svc.SubmitStep(context.Background(), uuid.New(), "", StepGoal, OnboardingForm{Goal: "lose"})
	require.NoError(t, err)
	assert.Equal(t, StepDetails, res.NextStep)
}

func TestSubmitStepGoal(t *testing.T) {
	svc := NewOnboardingService(newFakeProfiles())
	_, err := svc.SubmitStep(context.Background(), uuid.New(), "", StepGoal, OnboardingForm{})
	assert.Equal(t, "Please select a goal", fieldOf(t, err, "goal"))
	_, err = svc.SubmitStep(context.Background(), uuid.New(), "", StepGoal, OnboardingForm{Goal: "bulk"})
	assert.Error(t, err)
}

func TestSubmitStepDetails(t *testing.T) {
	profiles := newFakeProfiles()
	svc := NewOnboardingService(profiles)
	ctx := context.Background()
	user := uuid.New()

	_, err := svc.SubmitStep(ctx, user, "", StepGoal, OnboardingForm{Goal: "lose"})
	require.NoError(t, err)

	// goal comes from the stored profile
	_, err = svc.SubmitStep(ctx, user, "", StepDetails, OnboardingForm{Gender: "male", Age: 30, Height: 175, Weight: 80, DesiredWeight: 85})
	assert.Equal(t, "Desired weight must be lower than current weight", fieldOf(t, err, "desired_weight"))

	_, err = svc.SubmitStep(ctx, user, "", StepDetails, OnboardingForm{Gender: "male", Age: 12, Height: 175, Weight: 80, DesiredWeight: 70})
	assert.Equal(t, "Age must be 15-99", fieldOf(t, err, "age"))

	res, err := svc.SubmitStep(ctx, user, "", StepDetails, OnboardingForm{Gender: "male", Age: 30, Height: 175, Weight: 80, DesiredWeight: 70})
	require.NoError(t, err)
	assert.Equal(t, StepPace, res.NextStep)
	require.NotNil(t, res.Targets)
	assert.Equal(t, 2070, res.Targets.Maintenance)
	assert.Len(t, res.Targets.Options, 3)

	stored := profiles.rows[user]
	assert.Equal(t, 80.0, stored.Weight)
	assert.Equal(t, 70.0, stored.DesiredWeight)
	assert.Equal(t, "lose", stored.Goal)
}

func TestSubmitStepPace(t *testing.T) {
	profiles := newFakeProfiles()
	svc := NewOnboardingService(profiles)
	ctx := context.Background()
	user := uuid.New()
	form := OnboardingForm{Name: "Alex", Goal: "lose", Gender: "male", Age: 30, Height: 175, Weight: 80, DesiredWeight: 70}

	_, err := svc.SubmitStep(ctx, user, "", StepPace, form)
	assert.Equal(t, "Please select a pace", fieldOf(t, err, "pace"))

	form.Pace = models.PaceMaintain
	_, err = svc.SubmitStep(ctx, user, "", StepPace, form)
	assert.Error(t, err, "maintain is not offered for a lose goal")

	form.Pace = models.PaceModerate
	res, err := svc.SubmitStep(ctx, user, "", StepPace, form)
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.Equal(t, 1570, res.DailyTarget)
	assert.Equal(t, 1570, profiles.rows[user].DailyCaloriesTarget)
	assert.Equal(t, models.PaceModerate, profiles.rows[user].Pace)
}

func TestSubmitStepPaceSaveError(t *testing.T) {
	profiles := newFakeProfiles()
	profiles.upsertErr = errBoom
	svc := NewOnboardingService(profiles)
	form := OnboardingForm{Goal: "maintain", Gender: "female", Age: 40, Height: 165, Weight: 60, DesiredWeight: 60, Pace: "maintain"}

	_, err := svc.SubmitStep(context.Background(), uuid.New(), "", StepPace, form)
	assert.ErrorIs(t, err, errBoom)
}

func TestSubmitUnknownStep(t *testing.T) {
	_, err := NewOnboardingService(newFakeProfiles()).SubmitStep(context.Background(), uuid.New(), "", 7, OnboardingForm{})
	fieldOf(t, err, "step")
}

func TestOnboardingProfile(t *testing.T) {
	profiles := newFakeProfiles()
	svc := NewOnboardingService(profiles)
	user := uuid.New()

	p, err := svc.Profile(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user, p.ID)
	assert.Empty(t, p.Name)

	profiles.getErr = errBoom
	_, err = svc.Profile(context.Background(), user)
	assert.ErrorIs(t, err, errBoom)
}
