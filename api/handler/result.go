package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/pagecheck/inspector"
	"github.com/use-agent/pagecheck/models"
	"github.com/use-agent/pagecheck/users"
)

// Result returns the handler for GET /result, the inspection dispatcher.
//
// Orchestration flow:
//  1. Resolve query parameters into a ResultQuery (absent → "").
//  2. Log the identity service's user listing (informational, non-fatal).
//  3. Validate that url is present — the only 400 in the system.
//  4. Run the section search when both of its parameters are set,
//     otherwise embed a skip outcome.
//  5. Run the link search when its parameters are set, otherwise use an
//     empty list. The two operations fetch the page independently.
//  6. Assemble the 200 envelope. Upstream failures never become 5xx; they
//     surface as descriptive outcomes inside the success payload.
func Result(in *inspector.Inspector, uc *users.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := models.ResultQuery{
			URL:               c.Query("url"),
			SearchText:        c.Query("searchText"),
			SectionIdentifier: c.Query("sectionIdentifier"),
			DivID:             c.Query("divId"),
			LinkTextToFind:    c.Query("linkTextToFind"),
			ContainerSelector: c.Query("containerSelector"),
		}

		uc.LogListing(c.Request.Context())

		if q.URL == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Status:  "error",
				Message: "The \"url\" query parameter is required for the /result endpoint.",
			})
			return
		}

		sectionOutcome := models.SearchOutcome{
			Found:   false,
			Message: "Skipped search: searchText or sectionIdentifier not provided.",
		}
		if q.HasSectionSearch() {
			sectionOutcome = in.SearchSectionText(c.Request.Context(), q.URL, q.SearchText, q.SectionIdentifier)
		}

		links := []models.LinkMatch{}
		if q.HasLinkSearch() {
			links = in.FindLinksInDiv(c.Request.Context(), q.URL, q.DivID, q.ContainerSelector, q.LinkTextToFind)
		}

		c.JSON(http.StatusOK, models.ResultResponse{
			Status:                  "success",
			URL:                     q.URL,
			SearchTextInWebsiteHTML: sectionOutcome,
			FindSpecificLinksInDiv: models.LinkSearchResult{
				LinksFound: links,
				Message:    linkSummary(len(links)),
			},
		})
	}
}

// linkSummary derives the human-readable count message for the link search.
func linkSummary(n int) string {
	if n == 0 {
		return "No links found matching the criteria."
	}
	return fmt.Sprintf("Found %d link(s) matching the criteria.", n)
}
