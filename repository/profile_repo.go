package repository

import (
	"context"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	// Upsert inserts p or, when the row exists, overwrites only columns.
	Upsert(ctx context.Context, p *models.Profile, columns ...string) error
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Get(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, p *models.Profile, columns ...string) error {
	cols := append(append([]string{}, columns...), "updated_at")
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(p).Error
}
