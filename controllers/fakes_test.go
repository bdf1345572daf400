package controllers

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/SoyPhilips/BalanceAI-Pro/repository"
	"github.com/SoyPhilips/BalanceAI-Pro/services"
	"github.com/google/uuid"
)

type memProfiles struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Profile
}

func (m *memProfiles) Get(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

// Upsert keeps it simple: non-zero fields of p win.
func (m *memProfiles) Upsert(_ context.Context, p *models.Profile, _ ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := m.rows[p.ID]
	cur.ID = p.ID
	if p.Name != "" {
		cur.Name = p.Name
	}
	if p.Goal != "" {
		cur.Goal = p.Goal
	}
	if p.Gender != "" {
		cur.Gender = p.Gender
		cur.Age, cur.Height, cur.Weight, cur.DesiredWeight = p.Age, p.Height, p.Weight, p.DesiredWeight
	}
	if p.Pace != "" {
		cur.Pace = p.Pace
	}
	if p.DailyCaloriesTarget != 0 {
		cur.DailyCaloriesTarget = p.DailyCaloriesTarget
	}
	m.rows[p.ID] = cur
	return nil
}

type memLogs struct {
	mu      sync.Mutex
	entries []models.FoodLogEntry
}

func (m *memLogs) Create(_ context.Context, e *models.FoodLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = uint(len(m.entries) + 1)
	e.CreatedAt = time.Now()
	m.entries = append(m.entries, *e)
	return nil
}

func (m *memLogs) ListByDay(_ context.Context, userID uuid.UUID, day time.Time) ([]models.FoodLogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.FoodLogEntry{}
	for _, e := range m.entries {
		if e.UserID == userID && e.Date.Equal(day) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memLogs) Delete(_ context.Context, userID uuid.UUID, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.entries {
		if e.ID == id && e.UserID == userID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memFoods struct{ rows []models.Food }

func (m *memFoods) Search(_ context.Context, term string, limit int) ([]models.Food, error) {
	var out []models.Food
	for _, f := range m.rows {
		if strings.Contains(strings.ToLower(f.Name), strings.ToLower(term)) && len(out) < limit {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFoods) FindByID(_ context.Context, id uint) (*models.Food, error) {
	for _, f := range m.rows {
		if f.ID == id {
			return &f, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memFoods) Create(_ context.Context, f *models.Food) error {
	f.ID = uint(len(m.rows) + 1)
	m.rows = append(m.rows, *f)
	return nil
}

type memRecipes struct{ rows []models.Recipe }

func (m *memRecipes) List(_ context.Context, category string) ([]models.Recipe, error) {
	var out []models.Recipe
	for _, r := range m.rows {
		if category == "" || r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRecipes) FindByID(_ context.Context, id uint) (*models.Recipe, error) {
	for _, r := range m.rows {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, repository.ErrNotFound
}

// scriptedInference answers every model with the same reply.
type scriptedInference struct {
	text  string
	err   error
	calls int
}

func (s *scriptedInference) Generate(_ context.Context, _ services.InferenceRequest) (string, error) {
	s.calls++
	return s.text, s.err
}
