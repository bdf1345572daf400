package controllers

import (
	"net/http"

	"github.com/SoyPhilips/BalanceAI-Pro/services"
	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Foods *services.FoodService
}

func NewFoodController(fs *services.FoodService) *FoodController {
	return &FoodController{Foods: fs}
}

// GET /foods?q=apple
func (fc *FoodController) Search(c *gin.Context) {
	out, err := fc.Foods.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /foods
func (fc *FoodController) Create(c *gin.Context) {
	var req services.CreateFoodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	f, err := fc.Foods.Create(c.Request.Context(), currentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}
