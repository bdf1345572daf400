package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SoyPhilips/BalanceAI-Pro/services"
	"github.com/gin-gonic/gin"
)

type FoodLogController struct {
	Logs *services.FoodLogService
}

func NewFoodLogController(l *services.FoodLogService) *FoodLogController {
	return &FoodLogController{Logs: l}
}

type mealTypeReq struct {
	MealType string `json:"meal_type"`
}

// POST /logs/food/:id  {"meal_type": "snack"}
func (fc *FoodLogController) LogFood(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var body mealTypeReq
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}

	entry, err := fc.Logs.LogFood(c.Request.Context(), currentUser(c), id, body.MealType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// POST /logs/recipe/:id
func (fc *FoodLogController) LogRecipe(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	entry, err := fc.Logs.LogRecipe(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /logs?date=2024-05-01
func (fc *FoodLogController) List(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	entries, err := fc.Logs.ListDay(c.Request.Context(), currentUser(c), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// DELETE /logs/:id
func (fc *FoodLogController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := fc.Logs.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// dayParam reads ?date=YYYY-MM-DD, defaulting to today (UTC).
func dayParam(c *gin.Context) (time.Time, bool) {
	q := c.Query("date")
	if q == "" {
		return services.CalendarDay(time.Now()), true
	}
	day, err := time.Parse("2006-01-02", q)
	if err != nil {
		badRequest(c, "date must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return day, true
}
