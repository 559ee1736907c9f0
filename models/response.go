package models

// SearchOutcome is the result of a section text search. Immutable once built.
type SearchOutcome struct {
	// Found indicates whether the text was located within the section.
	Found bool `json:"found"`

	// Message is a human-readable explanation of the outcome.
	Message string `json:"message"`
}

// LinkMatch is one hyperlink matched inside the container.
type LinkMatch struct {
	// Text is the trimmed visible text of the link.
	Text string `json:"text"`

	// Href is the link target, or "N/A" when the anchor carries no
	// href attribute.
	Href string `json:"href"`
}

// LinkSearchResult groups the matched links with a count summary.
type LinkSearchResult struct {
	LinksFound []LinkMatch `json:"linksFound"`
	Message    string      `json:"message"`
}

// ResultResponse is the envelope for GET /result.
type ResultResponse struct {
	Status                  string           `json:"status"`
	URL                     string           `json:"url"`
	SearchTextInWebsiteHTML SearchOutcome    `json:"searchTextInWebsiteHtml"`
	FindSpecificLinksInDiv  LinkSearchResult `json:"findSpecificLinksInDiv"`
}

// ErrorResponse is the envelope for client-facing errors (validation,
// auth, rate limiting).
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// InfoResponse is the static payload returned for unmatched routes.
type InfoResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Motto   string            `json:"motto"`
	Links   map[string]string `json:"links"`
}

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
