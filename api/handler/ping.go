package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping returns the handler for /ping: a plain-text liveness probe that
// answers "Pong" for any method.
func Ping() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "Pong")
	}
}
