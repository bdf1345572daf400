package routes

import (
	"net/http"

	"github.com/SoyPhilips/BalanceAI-Pro/controllers"
	"github.com/SoyPhilips/BalanceAI-Pro/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Deps is everything the router needs; built once in main.
type Deps struct {
	Log        logrus.FieldLogger
	JWTSecret  []byte
	Gatherer   prometheus.Gatherer
	Onboarding *controllers.OnboardingController
	Analysis   *controllers.AnalysisController
	Logs       *controllers.FoodLogController
	Goals      *controllers.DailyGoalController
	Foods      *controllers.FoodController
	Recipes    *controllers.RecipeController
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(d.Log))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(d.JWTSecret))
	{
		api.POST("/targets", controllers.ComputeTargets)

		api.GET("/onboarding", d.Onboarding.Get)
		api.POST("/onboarding/steps/:step", d.Onboarding.SubmitStep)

		api.POST("/analyze", d.Analysis.Analyze)
		api.POST("/logs/analyzed", d.Analysis.LogAnalyzed)

		api.POST("/logs/food/:id", d.Logs.LogFood)
		api.POST("/logs/recipe/:id", d.Logs.LogRecipe)
		api.GET("/logs", d.Logs.List)
		api.DELETE("/logs/:id", d.Logs.Delete)
		api.GET("/dashboard", d.Goals.Summary)
		api.PUT("/dashboard/target", d.Goals.UpdateTarget)

		api.GET("/foods", d.Foods.Search)
		api.POST("/foods", d.Foods.Create)

		api.GET("/recipes", d.Recipes.List)
	}

	return r
}
