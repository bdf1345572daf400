package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/SoyPhilips/BalanceAI-Pro/services"
	"github.com/gin-gonic/gin"
)

const maxImageBytes = 10 << 20

type AnalysisController struct {
	Analysis *services.AnalysisService
	Logs     *services.FoodLogService
}

func NewAnalysisController(a *services.AnalysisService, l *services.FoodLogService) *AnalysisController {
	return &AnalysisController{Analysis: a, Logs: l}
}

// POST /analyze  multipart: image=<file>
func (ac *AnalysisController) Analyze(c *gin.Context) {
	data, contentType, err := readImage(c, "image")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	rec, err := ac.Analysis.AnalyzeFoodImage(c.Request.Context(), data, contentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

type logAnalyzedReq struct {
	Record   models.NutritionRecord `json:"record"`
	MealType string                 `json:"meal_type"`
}

// POST /logs/analyzed
//
// JSON {"record": {...}, "meal_type": "lunch"}, or multipart with fields
// record (JSON), meal_type and an optional image to archive with the entry.
func (ac *AnalysisController) LogAnalyzed(c *gin.Context) {
	var (
		req   logAnalyzedReq
		photo *services.Photo
	)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := json.Unmarshal([]byte(c.PostForm("record")), &req.Record); err != nil {
			badRequest(c, "record must be a JSON nutrition record")
			return
		}
		req.MealType = c.PostForm("meal_type")
		if _, err := c.FormFile("image"); err == nil {
			data, ct, err := readImage(c, "image")
			if err != nil {
				badRequest(c, err.Error())
				return
			}
			if ct, err = services.NormalizeImageType(ct); err != nil {
				respondError(c, err)
				return
			}
			photo = &services.Photo{Data: data, ContentType: ct}
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	entry, err := ac.Logs.LogAnalyzed(c.Request.Context(), currentUser(c), req.Record, req.MealType, photo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func readImage(c *gin.Context, field string) ([]byte, string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, "", fmt.Errorf("%s file is required", field)
	}
	if fh.Size > maxImageBytes {
		return nil, "", fmt.Errorf("image must be at most %d MB", maxImageBytes>>20)
	}
	data, err := readFormFile(fh)
	if err != nil {
		return nil, "", err
	}

	ct := fh.Header.Get("Content-Type")
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(data)
	}
	return data, ct, nil
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("cannot open upload: %w", err)
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxImageBytes))
}
