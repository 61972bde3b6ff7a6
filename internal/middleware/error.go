package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorLogger logs the errors handlers attached with c.Error
func ErrorLogger() gin.HandlerFunc {
	return ErrorLoggerWith(log.Default())
}

// ErrorLoggerWith logs to logger instead of the standard logger
func ErrorLoggerWith(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			logger.Printf("Error: %s %s [%s] status=%d: %v",
				c.Request.Method, c.Request.URL.Path, GetRequestID(c), c.Writer.Status(), err.Err)
		}
	}
}
