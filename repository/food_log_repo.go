package repository

import (
	"context"
	"time"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FoodLogRepository interface {
	Create(ctx context.Context, e *models.FoodLogEntry) error
	// ListByDay returns the user's entries for day, newest first.
	ListByDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]models.FoodLogEntry, error)
	Delete(ctx context.Context, userID uuid.UUID, id uint) error
}

type foodLogRepo struct {
	db *gorm.DB
}

func NewFoodLogRepo(db *gorm.DB) FoodLogRepository {
	return &foodLogRepo{db: db}
}

func (r *foodLogRepo) Create(ctx context.Context, e *models.FoodLogEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *foodLogRepo) ListByDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]models.FoodLogEntry, error) {
	var out []models.FoodLogEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day.Format("2006-01-02")).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *foodLogRepo) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.FoodLogEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
