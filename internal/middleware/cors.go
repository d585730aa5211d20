package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS restricts cross-origin access to an explicit allow-list of origins.
// extra origins (e.g. FRONTEND_URL) are appended to the built-in list; an
// http:// extra origin also allows its https:// counterpart.
func CORS(extraOrigins ...string) gin.HandlerFunc {
	allowed := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:3000": true,
	}
	for _, o := range extraOrigins {
		if o == "" {
			continue
		}
		allowed[o] = true
		if strings.HasPrefix(o, "http://") {
			allowed[strings.Replace(o, "http://", "https://", 1)] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		// Requests with no Origin (curl, server-to-server) pass untouched.
		if origin != "" && allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			c.Header("Access-Control-Expose-Headers", "X-Request-ID")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
