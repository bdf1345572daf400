package repository

import (
	"context"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"gorm.io/gorm"
)

type RecipeRepository interface {
	// List returns all recipes, or only those of category when it is set.
	List(ctx context.Context, category string) ([]models.Recipe, error)
	FindByID(ctx context.Context, id uint) (*models.Recipe, error)
}

type recipeRepo struct {
	db *gorm.DB
}

func NewRecipeRepo(db *gorm.DB) RecipeRepository {
	return &recipeRepo{db: db}
}

func (r *recipeRepo) List(ctx context.Context, category string) ([]models.Recipe, error) {
	var out []models.Recipe
	q := r.db.WithContext(ctx).Order("id")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *recipeRepo) FindByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var rec models.Recipe
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}
