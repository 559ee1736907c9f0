package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/pagecheck/models"
)

// Info returns the fallback handler for unmatched routes. It answers 200
// with a static informational payload rather than a 404 so that casual
// callers get pointed at the real endpoints.
func Info() gin.HandlerFunc {
	payload := models.InfoResponse{
		Status:  "info",
		Message: "Nothing to see here. Use GET /result to inspect a page, or /ping to check liveness.",
		Motto:   "Check the page before you trust the page.",
		Links: map[string]string{
			"ping":   "/ping",
			"health": "/health",
			"result": "/result?url=<page>&searchText=<text>&sectionIdentifier=<id>&divId=<id>&linkTextToFind=<text>",
		},
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, payload)
	}
}
