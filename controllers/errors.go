package controllers

import (
	"errors"
	"net/http"

	"github.com/SoyPhilips/BalanceAI-Pro/services"
	"github.com/SoyPhilips/BalanceAI-Pro/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type errorKind struct {
	target  error
	status  int
	code    string
	message string
}

var errorKinds = []errorKind{
	{services.ErrInvalidImage, http.StatusBadRequest, "invalid_image", "Please upload a JPEG, PNG, WEBP or HEIC photo."},
	{services.ErrInvalidMealType, http.StatusBadRequest, "invalid_meal_type", "Meal type must be breakfast, lunch, dinner or snack."},
	{services.ErrMissingCredential, http.StatusInternalServerError, "missing_credential", "Food analysis is not configured."},
	{services.ErrQuotaExhausted, http.StatusTooManyRequests, "quota_exhausted", "The analysis service is busy. Please try again later."},
	{services.ErrModelUnavailable, http.StatusServiceUnavailable, "model_unavailable", "No analysis model is available right now."},
	{services.ErrUnparsableResponse, http.StatusUnprocessableEntity, "unparsable_response", "Could not parse nutrition data. Please try again."},
	{services.ErrTransport, http.StatusBadGateway, "transport_error", "Could not reach the analysis service."},
	{services.ErrNotFound, http.StatusNotFound, "not_found", "Not found."},
}

// respondError maps a service error onto a status and a stable code.
func respondError(c *gin.Context, err error) {
	log := utils.LoggerFrom(c.Request.Context())

	var ve *services.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "code": "validation", "fields": ve.Fields})
		return
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			if k.status >= 500 {
				log.WithError(err).Error(k.code)
			}
			c.JSON(k.status, gin.H{"error": k.message, "code": k.code})
			return
		}
	}

	log.WithError(err).Error("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": "internal"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg, "code": "bad_request"})
}

func currentUser(c *gin.Context) uuid.UUID {
	id, _ := c.MustGet("userID").(uuid.UUID)
	return id
}
