package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/SoyPhilips/BalanceAI-Pro/repository"
	"github.com/SoyPhilips/BalanceAI-Pro/utils"
	"github.com/google/uuid"
)

// Onboarding steps, in order.
const (
	StepName = iota
	StepGoal
	StepDetails
	StepPace
)

// OnboardingForm carries everything the wizard has collected so far.
// Fields for later steps may be empty.
type OnboardingForm struct {
	Name          string  `json:"name"`
	Goal          string  `json:"goal"`
	Gender        string  `json:"gender"`
	Age           int     `json:"age"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	DesiredWeight float64 `json:"desired_weight"`
	Pace          string  `json:"pace"`
}

type StepResult struct {
	NextStep    int      `json:"next_step"`
	Done        bool     `json:"done"`
	DailyTarget int      `json:"daily_target,omitempty"`
	Targets     *Targets `json:"targets,omitempty"`
}

type OnboardingService struct {
	profiles repository.ProfileRepository
}

func NewOnboardingService(profiles repository.ProfileRepository) *OnboardingService {
	return &OnboardingService{profiles: profiles}
}

var lettersOnly = regexp.MustCompile(`^[a-zA-Z\s]*$`)

// Profile returns the stored profile, or an empty one for a new user.
func (s *OnboardingService) Profile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return &models.Profile{ID: userID}, nil
	}
	return p, err
}

// SubmitStep validates the fields of step and saves them. Intermediate
// saves never block the wizard; only the final step reports a save error.
func (s *OnboardingService) SubmitStep(ctx context.Context, userID uuid.UUID, email string, step int, form OnboardingForm) (*StepResult, error) {
	log := utils.LoggerFrom(ctx).WithField("step", step)
	form.Name = strings.TrimSpace(form.Name)

	row := &models.Profile{ID: userID, Email: email}
	var columns []string

	switch step {
	case StepName:
		if err := validateName(form.Name); err != nil {
			return nil, err
		}
		row.Name = form.Name
		columns = []string{"name"}

	case StepGoal:
		if !models.Goal(form.Goal).Valid() {
			return nil, &ValidationError{Fields: map[string]string{"goal": "Please select a goal"}}
		}
		row.Goal = form.Goal
		columns = []string{"goal"}

	case StepDetails:
		body := s.bodyProfile(ctx, userID, form)
		if err := ValidateBodyProfile(body); err != nil {
			return nil, err
		}
		row.Gender = string(body.Gender)
		row.Age = body.AgeYears
		row.Height = body.HeightCm
		row.Weight = body.WeightKg
		row.DesiredWeight = body.DesiredWeightKg
		columns = []string{"gender", "age", "height", "weight", "desired_weight"}

	case StepPace:
		return s.finish(ctx, row, form)

	default:
		return nil, &ValidationError{Fields: map[string]string{"step": fmt.Sprintf("unknown step %d", step)}}
	}

	if err := s.profiles.Upsert(ctx, row, columns...); err != nil {
		log.WithError(err).Warn("saving onboarding step failed, continuing")
	}

	res := &StepResult{NextStep: step + 1}
	if res.NextStep == StepPace {
		t := ComputeTargetsWithBMI(s.bodyProfile(ctx, userID, form))
		res.Targets = &t
	}
	return res, nil
}

func (s *OnboardingService) finish(ctx context.Context, row *models.Profile, form OnboardingForm) (*StepResult, error) {
	if form.Pace == "" {
		return nil, &ValidationError{Fields: map[string]string{"pace": "Please select a pace"}}
	}
	body := s.bodyProfile(ctx, row.ID, form)
	if err := ValidateBodyProfile(body); err != nil {
		return nil, err
	}
	targets := ComputeTargets(body)
	if !targets.HasPace(form.Pace) {
		return nil, &ValidationError{Fields: map[string]string{"pace": "Please select a pace"}}
	}

	row.Pace = form.Pace
	row.DailyCaloriesTarget = SelectDailyTarget(targets, form.Pace)
	if err := s.profiles.Upsert(ctx, row, "pace", "daily_calories_target"); err != nil {
		return nil, fmt.Errorf("save daily target: %w", err)
	}

	utils.LoggerFrom(ctx).WithField("daily_target", row.DailyCaloriesTarget).Info("onboarding completed")
	return &StepResult{NextStep: StepPace, Done: true, DailyTarget: row.DailyCaloriesTarget}, nil
}

// bodyProfile overlays the submitted form on whatever is already stored.
func (s *OnboardingService) bodyProfile(ctx context.Context, userID uuid.UUID, form OnboardingForm) models.BodyProfile {
	var body models.BodyProfile
	if p, err := s.profiles.Get(ctx, userID); err == nil {
		body = p.BodyProfile()
	}
	if form.Goal != "" {
		body.Goal = models.Goal(form.Goal)
	}
	if form.Gender != "" {
		body.Gender = models.Gender(form.Gender)
	}
	if form.Age != 0 {
		body.AgeYears = form.Age
	}
	if form.Height != 0 {
		body.HeightCm = form.Height
	}
	if form.Weight != 0 {
		body.WeightKg = form.Weight
	}
	if form.DesiredWeight != 0 {
		body.DesiredWeightKg = form.DesiredWeight
	}
	return body
}

func validateName(name string) error {
	var msg string
	switch {
	case name == "":
		msg = "Name is required"
	case len([]rune(name)) < 2:
		msg = "Name must be at least 2 characters"
	case !lettersOnly.MatchString(name):
		msg = "Name must contain only letters"
	default:
		return nil
	}
	return &ValidationError{Fields: map[string]string{"name": msg}}
}
