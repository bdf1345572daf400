package controllers

import (
	"net/http"
	"strconv"

	"github.com/SoyPhilips/BalanceAI-Pro/services"
	"github.com/gin-gonic/gin"
)

type OnboardingController struct {
	Onboarding *services.OnboardingService
}

func NewOnboardingController(s *services.OnboardingService) *OnboardingController {
	return &OnboardingController{Onboarding: s}
}

// GET /onboarding
func (oc *OnboardingController) Get(c *gin.Context) {
	p, err := oc.Onboarding.Profile(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /onboarding/steps/:step
func (oc *OnboardingController) SubmitStep(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		badRequest(c, "step must be a number")
		return
	}
	var form services.OnboardingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := oc.Onboarding.SubmitStep(c.Request.Context(), currentUser(c), c.GetString("email"), step, form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
