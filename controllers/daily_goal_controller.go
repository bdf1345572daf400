package controllers

import (
	"net/http"

	"github.com/SoyPhilips/BalanceAI-Pro/services"
	"github.com/gin-gonic/gin"
)

type DailyGoalController struct {
	Goals *services.DailyGoalService
}

func NewDailyGoalController(g *services.DailyGoalService) *DailyGoalController {
	return &DailyGoalController{Goals: g}
}

// GET /dashboard?date=2024-05-01
func (dc *DailyGoalController) Summary(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	sum, err := dc.Goals.Summary(c.Request.Context(), currentUser(c), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// PUT /dashboard/target  {"daily_calories_target": 1800}
func (dc *DailyGoalController) UpdateTarget(c *gin.Context) {
	var req struct {
		DailyCaloriesTarget int `json:"daily_calories_target"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := dc.Goals.SetTarget(c.Request.Context(), currentUser(c), c.GetString("email"), req.DailyCaloriesTarget); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily_calories_target": req.DailyCaloriesTarget})
}
