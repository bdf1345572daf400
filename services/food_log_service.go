package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/SoyPhilips/BalanceAI-Pro/repository"
	"github.com/SoyPhilips/BalanceAI-Pro/utils"
	"github.com/google/uuid"
)

// PhotoStore keeps meal photos and returns a URL for them.
type PhotoStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// Photo is the image an analyzed entry came from.
type Photo struct {
	Data        []byte
	ContentType string
}

type FoodLogService struct {
	logs    repository.FoodLogRepository
	foods   repository.FoodRepository
	recipes repository.RecipeRepository
	photos  PhotoStore
	now     func() time.Time
}

// NewFoodLogService wires the log writer. photos may be nil, in which case
// analyzed entries are saved without a photo URL.
func NewFoodLogService(
	logs repository.FoodLogRepository,
	foods repository.FoodRepository,
	recipes repository.RecipeRepository,
	photos PhotoStore,
) *FoodLogService {
	return &FoodLogService{logs: logs, foods: foods, recipes: recipes, photos: photos, now: time.Now}
}

// CalendarDay truncates t to its UTC calendar date.
func CalendarDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *FoodLogService) today() time.Time { return CalendarDay(s.now()) }

// LogAnalyzed settles an accepted NutritionRecord as today's entry for
// mealType. Macro strings are coerced to numbers; a failed photo upload
// is logged and the entry is saved without it.
func (s *FoodLogService) LogAnalyzed(
	ctx context.Context,
	userID uuid.UUID,
	rec models.NutritionRecord,
	mealType string,
	photo *Photo,
) (*models.FoodLogEntry, error) {
	if !models.IsMealType(mealType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMealType, mealType)
	}

	entry := &models.FoodLogEntry{
		UserID:   userID,
		Date:     s.today(),
		MealType: mealType,
		FoodName: strings.TrimSpace(rec.DishName),
		Calories: utils.CoerceNumber(rec.Calories),
		Protein:  utils.CoerceNumber(string(rec.Protein)),
		Carbs:    utils.CoerceNumber(string(rec.Carbs)),
		Fat:      utils.CoerceNumber(string(rec.Fat)),
		Tips:     rec.HealthyTips,
	}
	if entry.FoodName == "" {
		entry.FoodName = "Unknown dish"
	}

	if photo != nil && len(photo.Data) > 0 && s.photos != nil {
		key := utils.PhotoKey(userID.String(), photo.ContentType, s.now())
		url, err := s.photos.Upload(ctx, key, photo.ContentType, photo.Data)
		if err != nil {
			utils.LoggerFrom(ctx).WithError(err).Warn("meal photo upload failed, logging without photo")
		} else {
			entry.PhotoURL = url
		}
	}

	if err := s.logs.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// LogFood logs one serving of a catalog food.
func (s *FoodLogService) LogFood(ctx context.Context, userID uuid.UUID, foodID uint, mealType string) (*models.FoodLogEntry, error) {
	if !models.IsMealType(mealType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMealType, mealType)
	}
	food, err := s.foods.FindByID(ctx, foodID)
	if err != nil {
		return nil, err
	}

	entry := &models.FoodLogEntry{
		UserID:   userID,
		Date:     s.today(),
		MealType: mealType,
		FoodName: food.Name,
		Calories: food.Calories,
		Protein:  food.Protein,
		Carbs:    food.Carbs,
		Fat:      food.Fat,
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// LogRecipe logs a recipe under its own category, or lunch when it has
// none.
func (s *FoodLogService) LogRecipe(ctx context.Context, userID uuid.UUID, recipeID uint) (*models.FoodLogEntry, error) {
	r, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	mealType := r.Category
	if !models.IsMealType(mealType) {
		mealType = models.MealLunch
	}
	entry := &models.FoodLogEntry{
		UserID:   userID,
		Date:     s.today(),
		MealType: mealType,
		FoodName: r.Name,
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fat:      r.Fat,
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *FoodLogService) ListDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]models.FoodLogEntry, error) {
	return s.logs.ListByDay(ctx, userID, CalendarDay(day))
}

// Delete removes one of the user's entries; other users' ids are reported
// as not found.
func (s *FoodLogService) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	return s.logs.Delete(ctx, userID, id)
}
