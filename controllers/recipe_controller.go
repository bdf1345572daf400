package controllers

import (
	"net/http"

	"github.com/SoyPhilips/BalanceAI-Pro/services"
	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	Recipes *services.RecipeService
}

func NewRecipeController(rs *services.RecipeService) *RecipeController {
	return &RecipeController{Recipes: rs}
}

// GET /recipes?category=breakfast
func (rc *RecipeController) List(c *gin.Context) {
	out, err := rc.Recipes.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
