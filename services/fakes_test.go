package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/SoyPhilips/BalanceAI-Pro/repository"
	"github.com/google/uuid"
)

type fakeProfiles struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]models.Profile
	upserts   [][]string
	upsertErr error
	getErr    error
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{rows: map[uuid.UUID]models.Profile{}}
}

func (f *fakeProfiles) Get(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProfiles) Upsert(_ context.Context, p *models.Profile, columns ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, columns)
	if f.upsertErr != nil {
		return f.upsertErr
	}
	cur, ok := f.rows[p.ID]
	if !ok {
		f.rows[p.ID] = *p
		return nil
	}
	for _, c := range columns {
		switch c {
		case "name":
			cur.Name = p.Name
		case "goal":
			cur.Goal = p.Goal
		case "gender":
			cur.Gender = p.Gender
		case "age":
			cur.Age = p.Age
		case "height":
			cur.Height = p.Height
		case "weight":
			cur.Weight = p.Weight
		case "desired_weight":
			cur.DesiredWeight = p.DesiredWeight
		case "pace":
			cur.Pace = p.Pace
		case "daily_calories_target":
			cur.DailyCaloriesTarget = p.DailyCaloriesTarget
		}
	}
	f.rows[p.ID] = cur
	return nil
}

type fakeLogs struct {
	mu        sync.Mutex
	entries   []models.FoodLogEntry
	nextID    uint
	createErr error
}

func (f *fakeLogs) Create(_ context.Context, e *models.FoodLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	e.ID = f.nextID
	e.CreatedAt = time.Unix(int64(f.nextID), 0)
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeLogs) ListByDay(_ context.Context, userID uuid.UUID, day time.Time) ([]models.FoodLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.FoodLogEntry
	for _, e := range f.entries {
		if e.UserID == userID && e.Date.Equal(day) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeLogs) Delete(_ context.Context, userID uuid.UUID, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.entries {
		if e.ID == id && e.UserID == userID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeFoods struct {
	mu    sync.Mutex
	rows  []models.Food
	terms []string
}

func (f *fakeFoods) Search(_ context.Context, term string, limit int) ([]models.Food, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terms = append(f.terms, term)
	var out []models.Food
	for _, r := range f.rows {
		if strings.Contains(strings.ToLower(r.Name), strings.ToLower(term)) {
			out = append(out, r)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeFoods) FindByID(_ context.Context, id uint) (*models.Food, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeFoods) Create(_ context.Context, food *models.Food) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	food.ID = uint(len(f.rows) + 1)
	f.rows = append(f.rows, *food)
	return nil
}

type fakeRecipes struct {
	rows []models.Recipe
}

func (f *fakeRecipes) List(_ context.Context, category string) ([]models.Recipe, error) {
	var out []models.Recipe
	for _, r := range f.rows {
		if category == "" || r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecipes) FindByID(_ context.Context, id uint) (*models.Recipe, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakePhotos struct {
	keys []string
	err  error
}

func (f *fakePhotos) Upload(_ context.Context, key, _ string, _ []byte) (string, error) {
	f.keys = append(f.keys, key)
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.test/" + key, nil
}

var errBoom = errors.New("boom")
