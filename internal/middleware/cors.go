package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls the cross-origin policy.
type CORSConfig struct {
	AllowOrigins []string
	AllowHeaders []string
	AllowMethods []string
}

// DefaultCORSConfig returns the policy for the given environment.
// Non-production environments allow any origin.
func DefaultCORSConfig(environment string) CORSConfig {
	cfg := CORSConfig{
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "lang"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	}
	if environment == "production" {
		return cfg
	}

	cfg.AllowOrigins = []string{"*"}
	return cfg
}

// CORS applies the cross-origin policy and short-circuits preflights.
func (m Middleware) CORS(cfg CORSConfig) gin.HandlerFunc {
	allowOrigin := ""
	if len(cfg.AllowOrigins) > 0 {
		allowOrigin = cfg.AllowOrigins[0]
	}
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	allowMethods := strings.Join(cfg.AllowMethods, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case allowOrigin == "*":
			c.Header("Access-Control-Allow-Origin", "*")
		case containsOrigin(cfg.AllowOrigins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Headers", allowHeaders)
		c.Header("Access-Control-Allow-Methods", allowMethods)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func containsOrigin(origins []string, origin string) bool {
	for _, o := range origins {
		if o == origin {
			return true
		}
	}
	return false
}
