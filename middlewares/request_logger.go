package middlewares

import (
	"time"

	"github.com/SoyPhilips/BalanceAI-Pro/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger gives every request an id and a logger carrying it, and
// logs the outcome once the handler chain returns.
func RequestLogger(base logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header(requestIDHeader, reqID)

		log := base.WithFields(logrus.Fields{
			"request_id":  reqID,
			"http.method": c.Request.Method,
			"http.path":   c.Request.URL.Path,
		})
		c.Request = c.Request.WithContext(utils.WithLogger(c.Request.Context(), log))

		c.Next()

		entry := utils.LoggerFrom(c.Request.Context()).WithFields(logrus.Fields{
			"http.status": c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request complete")
		case c.Writer.Status() >= 400:
			entry.Warn("request complete")
		default:
			entry.Debug("request complete")
		}
	}
}
