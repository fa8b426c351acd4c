package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs the request method, path, caller, status code, and latency.
// Authenticated requests are attributed to the actor from the JWT claims.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		actor := c.ClientIP()
		if id, err := GetActorIDFromContext(c); err == nil {
			actor = id.String()
			if role, err := GetActorRoleFromContext(c); err == nil {
				actor = string(role) + ":" + actor
			}
		}

		log.Printf(
			"[%s] %s %s %d %s",
			c.Request.Method,
			c.Request.URL.Path,
			actor,
			c.Writer.Status(),
			latency,
		)
		for _, ginErr := range c.Errors {
			log.Printf("[%s] %s error: %v", c.Request.Method, c.Request.URL.Path, ginErr.Err)
		}
	}
}
