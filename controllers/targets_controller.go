package controllers

import (
	"net/http"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/SoyPhilips/BalanceAI-Pro/services"
	"github.com/gin-gonic/gin"
)

// POST /targets
func ComputeTargets(c *gin.Context) {
	var body models.BodyProfile
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := services.ValidateBodyProfile(body); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.ComputeTargetsWithBMI(body))
}
