package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const defaultAllowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"

// CORSMiddleware applies a fully open policy. The request origin is echoed
// back since credentials are allowed and "*" is invalid in that case.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()

		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			header.Set("Access-Control-Allow-Origin", origin)
			header.Add("Vary", "Origin")
		} else {
			header.Set("Access-Control-Allow-Origin", "*")
		}
		header.Set("Access-Control-Allow-Credentials", "true")

		methods := c.Request.Header.Get("Access-Control-Request-Method")
		if methods == "" {
			methods = defaultAllowMethods
		}
		header.Set("Access-Control-Allow-Methods", methods)

		headers := c.Request.Header.Get("Access-Control-Request-Headers")
		if headers == "" {
			headers = "*"
		}
		header.Set("Access-Control-Allow-Headers", headers)
		header.Set("Access-Control-Expose-Headers", requestIDHeader)
		header.Set("Access-Control-Max-Age", "600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
