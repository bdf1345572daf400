package middlewares

import (
	"net/http"
	"strings"

	"github.com/SoyPhilips/BalanceAI-Pro/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token issued by the auth provider and
// puts the user's id (uuid.UUID) and email into the gin context.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(secret) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		userID, email, err := utils.ParseUserToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("userID", userID)
		c.Set("email", email)

		ctx := c.Request.Context()
		log := utils.LoggerFrom(ctx).WithField("user_id", userID.String())
		c.Request = c.Request.WithContext(utils.WithLogger(ctx, log))

		c.Next()
	}
}
