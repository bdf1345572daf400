package repository

import (
	"context"
	"strings"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"gorm.io/gorm"
)

type FoodRepository interface {
	Search(ctx context.Context, term string, limit int) ([]models.Food, error)
	FindByID(ctx context.Context, id uint) (*models.Food, error)
	Create(ctx context.Context, f *models.Food) error
}

type foodRepo struct {
	db *gorm.DB
}

func NewFoodRepo(db *gorm.DB) FoodRepository {
	return &foodRepo{db: db}
}

func (r *foodRepo) Search(ctx context.Context, term string, limit int) ([]models.Food, error) {
	var out []models.Food
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+escapeLike(term)+"%").
		Order("name").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *foodRepo) FindByID(ctx context.Context, id uint) (*models.Food, error) {
	var f models.Food
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

func (r *foodRepo) Create(ctx context.Context, f *models.Food) error {
	return r.db.WithContext(ctx).Create(f).Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
