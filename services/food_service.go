package services

import (
	"context"
	"strings"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/SoyPhilips/BalanceAI-Pro/repository"
	"github.com/google/uuid"
)

const foodSearchLimit = 10

type FoodService struct {
	foods repository.FoodRepository
}

func NewFoodService(foods repository.FoodRepository) *FoodService {
	return &FoodService{foods: foods}
}

// Search matches food names case-insensitively. A blank term finds nothing.
func (s *FoodService) Search(ctx context.Context, term string) ([]models.Food, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.Food{}, nil
	}
	out, err := s.foods.Search(ctx, term, foodSearchLimit)
	if out == nil {
		out = []models.Food{}
	}
	return out, err
}

// CreateFoodReq is a user-defined catalog entry.
type CreateFoodReq struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize string  `json:"serving_size"`
}

func (s *FoodService) Create(ctx context.Context, userID uuid.UUID, req CreateFoodReq) (*models.Food, error) {
	fe := fieldErrors{}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		fe.add("name", "Name is required")
	}
	for field, v := range map[string]float64{
		"calories": req.Calories,
		"protein":  req.Protein,
		"carbs":    req.Carbs,
		"fat":      req.Fat,
	} {
		if v < 0 {
			fe.add(field, "Must not be negative")
		}
	}
	if err := fe.err(); err != nil {
		return nil, err
	}

	f := &models.Food{
		Name:        name,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		ServingSize: strings.TrimSpace(req.ServingSize),
		CreatedBy:   userID,
	}
	if err := s.foods.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}
